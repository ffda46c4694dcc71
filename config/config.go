package config

import (
	"encoding/json"
	"io/ioutil"
	"time"

	"github.com/Taraxa-project/taraxa-certs/kvdb"
)

type RPCConfig struct {
	Listen    string `json:"listen"`
	TimeoutMs int    `json:"timeoutMs"`
}

func (this *RPCConfig) Timeout() time.Duration {
	return time.Duration(this.TimeoutMs) * time.Millisecond
}

type Config struct {
	Store *kvdb.GenericFactory `json:"store"`
	// decoded records kept in memory; 0 disables the cache
	CacheSize  int       `json:"cacheSize"`
	MerkleHash string    `json:"merkleHash"`
	Auth       string    `json:"auth"`
	RPC        RPCConfig `json:"rpc"`
	Verbosity  int       `json:"verbosity"`
}

func Default() *Config {
	return &Config{
		Store:      kvdb.NewGenericFactory("memory", new(kvdb.MemoryFactory)),
		CacheSize:  1024,
		MerkleHash: "sha256",
		Auth:       "signature",
		RPC: RPCConfig{
			Listen:    "127.0.0.1:7545",
			TimeoutMs: 5000,
		},
		Verbosity: 3,
	}
}

// Parse overlays the JSON document b onto the defaults.
func Parse(b []byte) (*Config, error) {
	ret := Default()
	if err := json.Unmarshal(b, ret); err != nil {
		return nil, err
	}
	return ret, nil
}

func Load(file string) (*Config, error) {
	b, err := ioutil.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return Parse(b)
}
