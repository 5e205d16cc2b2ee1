package rpc

import (
	"fmt"
	"net"
	"net/rpc"

	"github.com/Boren/ringoffire/logger"
	"github.com/Boren/ringoffire/models"
	"github.com/Boren/ringoffire/room"
)

// Server manages the RPC listener.
type Server struct {
	listener net.Listener
	address  string
}

// NewServer creates a new RPC server.
func NewServer(addr string) (*Server, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	return &Server{
		listener: listener,
		address:  addr,
	}, nil
}

// Start begins listening for RPC requests.
func (s *Server) Start() {
	logger.Log.Infof("RPC server listening on %s", s.address)
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			// Check if the error is due to the listener being closed.
			if _, ok := err.(*net.OpError); ok {
				logger.Log.Info("RPC server listener closed.")
				return
			}
			logger.Log.Errorf("RPC server accept error: %v", err)
			continue
		}
		go rpc.ServeConn(conn)
	}
}

// Stop closes the RPC listener.
func (s *Server) Stop() {
	if s.listener != nil {
		logger.Log.Info("Stopping RPC server.")
		s.listener.Close()
	}
}

// AdminService exposes read-only room inspection over net/rpc. It follows
// the net/rpc signature rules: exported methods, pointer reply, error return.
type AdminService struct {
	registry *room.Registry
}

// NewAdminService creates a new AdminService.
func NewAdminService(registry *room.Registry) *AdminService {
	return &AdminService{registry: registry}
}

type ListRoomsArgs struct{}

type ListRoomsReply struct {
	Names []string
}

func (a *AdminService) ListRooms(args *ListRoomsArgs, reply *ListRoomsReply) error {
	reply.Names = a.registry.Names()
	return nil
}

type GetRoomArgs struct {
	Name string
}

type GetRoomReply struct {
	Room models.RoomSnapshot
}

func (a *AdminService) GetRoom(args *GetRoomArgs, reply *GetRoomReply) error {
	r, exists := a.registry.FindByName(args.Name)
	if !exists {
		return fmt.Errorf("room %s not found", args.Name)
	}
	reply.Room = r.Snapshot()
	return nil
}
