// Package proto holds the generated gRPC bindings of presskit/v1/presskit.proto.
package proto

//go:generate protoc -I ../../proto --go_out=../.. --go_opt=module=github.com/dmitrijs2005/presskit --go-grpc_out=../.. --go-grpc_opt=module=github.com/dmitrijs2005/presskit presskit/v1/presskit.proto
