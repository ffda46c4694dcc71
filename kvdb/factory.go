package kvdb

import (
	"encoding/json"
	"fmt"
)

type Factory interface {
	NewDB() (Database, error)
}

// FactoryRegistry maps the "type" of a database config to its factory.
// Backends behind build tags register themselves from init.
var FactoryRegistry = map[string]func() Factory{
	"memory": func() Factory {
		return new(MemoryFactory)
	},
	"leveldb": func() Factory {
		return new(LevelDBFactory)
	},
}

type MemoryFactory struct {
	InitialCapacity int `json:"initialCapacity"`
}

func (this *MemoryFactory) NewDB() (Database, error) {
	return NewMemDatabaseWithCap(this.InitialCapacity), nil
}

type LevelDBFactory struct {
	File    string `json:"file"`
	Cache   int    `json:"cache"`
	Handles int    `json:"handles"`
}

func (this *LevelDBFactory) NewDB() (Database, error) {
	if len(this.File) == 0 {
		return nil, fmt.Errorf("leveldb: file is required")
	}
	return NewLDBDatabase(this.File, this.Cache, this.Handles)
}

type FactoryType struct {
	Type string `json:"type"`
}

type FactoryOptions struct {
	Factory Factory `json:"options"`
}

// GenericFactory is a JSON-configurable factory of the form
// {"type": "leveldb", "options": {...}}.
type GenericFactory struct {
	FactoryType
	FactoryOptions
}

func NewGenericFactory(typ string, factory Factory) *GenericFactory {
	return &GenericFactory{FactoryType{typ}, FactoryOptions{factory}}
}

func (this *GenericFactory) NewDB() (Database, error) {
	if this == nil || this.Factory == nil {
		return nil, fmt.Errorf("database is not configured")
	}
	return this.Factory.NewDB()
}

func (this *GenericFactory) UnmarshalJSON(b []byte) error {
	if err := json.Unmarshal(b, &this.FactoryType); err != nil {
		return err
	}
	newFactory, ok := FactoryRegistry[this.Type]
	if !ok {
		return fmt.Errorf("unknown database type: %q", this.Type)
	}
	this.Factory = newFactory()
	return json.Unmarshal(b, &this.FactoryOptions)
}

func (this GenericFactory) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    string  `json:"type"`
		Options Factory `json:"options,omitempty"`
	}{this.Type, this.Factory})
}
