package server

import (
	"errors"
	"net/http"
	"net/rpc"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/Boren/ringoffire/broadcast"
	"github.com/Boren/ringoffire/dispatcher"
	"github.com/Boren/ringoffire/logger"
	"github.com/Boren/ringoffire/monitor"
	"github.com/Boren/ringoffire/network"
	"github.com/Boren/ringoffire/room"
	ringoffire_rpc "github.com/Boren/ringoffire/rpc"
	"github.com/Boren/ringoffire/session"
	"github.com/Boren/ringoffire/timer"
)

type GameServer struct {
	addr           string
	upgrader       websocket.Upgrader
	registry       *room.Registry
	sessionManager *session.Manager
	timers         *timer.Manager
	dispatcher     *dispatcher.Dispatcher
	monitor        *monitor.Monitor
	rpcServer      *ringoffire_rpc.Server
	shutdownChan   chan struct{}
}

func NewGameServer(addr, rpcAddr string, syncInterval time.Duration, mon *monitor.Monitor) *GameServer {
	timers := timer.NewManager()
	registry := room.NewRegistry(timers, syncInterval)
	sessionManager := session.NewManager()
	broadcaster := broadcast.NewRoomBroadcaster(registry, sessionManager)

	s := &GameServer{
		addr:           addr,
		registry:       registry,
		sessionManager: sessionManager,
		timers:         timers,
		monitor:        mon,
		dispatcher:     dispatcher.New(registry, sessionManager, broadcaster, mon),
		shutdownChan:   make(chan struct{}),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true // 允许所有跨域请求
			},
		},
	}

	// 初始化RPC服务器
	rpcServer, err := ringoffire_rpc.NewServer(rpcAddr)
	if err != nil {
		logger.Log.Fatalf("Failed to create RPC server: %v", err)
	}
	s.rpcServer = rpcServer

	// 注册RPC服务
	adminService := ringoffire_rpc.NewAdminService(registry)
	rpc.Register(adminService)

	return s
}

func (s *GameServer) Start() error {
	go s.rpcServer.Start()

	http.HandleFunc("/ws", s.handleWebSocket)
	logger.Log.Infof("Game server listening on %s", s.addr)
	return http.ListenAndServe(s.addr, nil)
}

func (s *GameServer) Shutdown() {
	close(s.shutdownChan)
	s.timers.Stop()
	s.rpcServer.Stop()
}

func (s *GameServer) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.Infof("Failed to upgrade connection: %v", err)
		return
	}
	s.handleConnection(conn)
}

func (s *GameServer) handleConnection(conn *websocket.Conn) {
	wsConn := network.NewWSConnection(conn)
	sess := session.NewSession(uuid.New().String(), wsConn)
	s.sessionManager.Add(sess)
	if s.monitor != nil {
		s.monitor.IncOnlinePlayers()
	}

	logger.Log.Infof("New connection from %s, session ID: %s", wsConn.RemoteAddr(), sess.GetID())

	defer func() {
		logger.Log.Infof("Connection closed from %s, session ID: %s", wsConn.RemoteAddr(), sess.GetID())
		s.dispatcher.HandleDisconnect(sess)
		s.sessionManager.Remove(sess.GetID())
		if s.monitor != nil {
			s.monitor.DecOnlinePlayers()
		}
		wsConn.Close()
	}()

	for {
		select {
		case <-s.shutdownChan:
			return
		default:
			env, err := wsConn.ReadEnvelope()
			if err != nil {
				if errors.Is(err, network.ErrMalformed) {
					logger.Log.Warnf("Session %s: dropping frame: %v", sess.GetID(), err)
					continue
				}
				return
			}

			start := time.Now()
			s.dispatcher.Dispatch(sess, env)
			if s.monitor != nil {
				s.monitor.IncMessagesReceived()
				s.monitor.ObserveMessageLatency(time.Since(start))
			}
		}
	}
}
