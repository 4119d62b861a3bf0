// Package pb holds the spectator protocol shared by the server and the players.
package pb

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative tetris.proto
