// Package wire holds the protobuf messages and gRPC stubs of the Ledger
// service generated from api/proto.
package wire

//go:generate protoc -I ../../../../api/proto --go_out=../../../.. --go_opt=module=github.com/dtroode/carechain-server --go-grpc_out=../../../.. --go-grpc_opt=module=github.com/dtroode/carechain-server carechain/ledger/v1/ledger.proto
