package rpc

import (
	"context"

	"github.com/Taraxa-project/taraxa-certs/metrics"
	"github.com/ethereum/go-ethereum/log"
	gethmetrics "github.com/ethereum/go-ethereum/metrics"
	"google.golang.org/grpc"
)

const serviceName = "certs.Ledger"

const (
	methodIssue              = "IssueCertificate"
	methodRevoke             = "RevokeCertificate"
	methodIsRevoked          = "IsRevoked"
	methodGet                = "GetCertificate"
	methodVerifyCertificates = "BatchVerifyCertificates"
	methodVerifyMerkle       = "VerifyMerkleBatch"
)

func fullMethod(method string) string {
	return "/" + serviceName + "/" + method
}

var serviceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*Backend)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: methodIssue,
			Handler: unaryHandler(methodIssue, func() interface{} { return new(IssueRequest) },
				func(b Backend, req interface{}) (interface{}, error) {
					r := req.(*IssueRequest)
					return &Empty{}, b.Issue(r.ID, r.Issuer, r.Owner, r.MetadataURI, r.Credential)
				}),
		},
		{
			MethodName: methodRevoke,
			Handler: unaryHandler(methodRevoke, func() interface{} { return new(RevokeRequest) },
				func(b Backend, req interface{}) (interface{}, error) {
					r := req.(*RevokeRequest)
					return &Empty{}, b.Revoke(r.ID, r.Reason, r.Credential)
				}),
		},
		{
			MethodName: methodIsRevoked,
			Handler: unaryHandler(methodIsRevoked, func() interface{} { return new(IDRequest) },
				func(b Backend, req interface{}) (interface{}, error) {
					revoked, err := b.IsRevoked(req.(*IDRequest).ID)
					return &BoolResponse{revoked}, err
				}),
		},
		{
			MethodName: methodGet,
			Handler: unaryHandler(methodGet, func() interface{} { return new(IDRequest) },
				func(b Backend, req interface{}) (interface{}, error) {
					cert, err := b.Get(req.(*IDRequest).ID)
					return &cert, err
				}),
		},
		{
			MethodName: methodVerifyCertificates,
			Handler: unaryHandler(methodVerifyCertificates, func() interface{} { return new(VerifyCertificatesRequest) },
				func(b Backend, req interface{}) (interface{}, error) {
					report, err := b.VerifyCertificates(req.(*VerifyCertificatesRequest).IDs)
					return &report, err
				}),
		},
		{
			MethodName: methodVerifyMerkle,
			Handler: unaryHandler(methodVerifyMerkle, func() interface{} { return new(VerifyMerkleRequest) },
				func(b Backend, req interface{}) (interface{}, error) {
					r := req.(*VerifyMerkleRequest)
					results, err := b.VerifyMerkle(r.Root, r.Proofs)
					return &VerifyMerkleResponse{results}, err
				}),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "certs/ledger",
}

type handlerFunc = func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error)

func unaryHandler(method string, newRequest func() interface{}, call func(Backend, interface{}) (interface{}, error)) handlerFunc {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := newRequest()
		if err := dec(in); err != nil {
			return nil, err
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			out, err := call(srv.(Backend), req)
			if err != nil {
				return nil, toStatus(err)
			}
			return out, nil
		}
		if interceptor == nil {
			return handler(ctx, in)
		}
		return interceptor(ctx, in, &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod(method)}, handler)
	}
}

func logCalls(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	recordTime := metrics.NewTimeRecorder(gethmetrics.GetOrRegisterTimer("rpc"+info.FullMethod, nil).Update)
	resp, err := handler(ctx, req)
	elapsed := recordTime()
	if err != nil {
		log.Debug("RPC call failed", "method", info.FullMethod, "elapsed", elapsed, "err", err)
	} else {
		log.Trace("RPC call served", "method", info.FullMethod, "elapsed", elapsed)
	}
	return resp, err
}

// NewServer returns a gRPC server exposing backend. The caller owns
// Serve and Stop.
func NewServer(backend Backend, opts ...grpc.ServerOption) *grpc.Server {
	server := grpc.NewServer(append([]grpc.ServerOption{grpc.UnaryInterceptor(logCalls)}, opts...)...)
	server.RegisterService(&serviceDesc, backend)
	return server
}
