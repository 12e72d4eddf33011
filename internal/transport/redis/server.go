package redis

import (
	"bufio"
	"context"
	"fmt"
	"net"
	"strings"
	"sync"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/cafebazaar/majority-vote/pkg/majority"

	redisproto "github.com/secmask/go-redisproto"
	"github.com/sirupsen/logrus"
)

type redisServer struct {
	listenPort      int
	core            majority.Service
	readConsistency majority.ConsistencyLevel
	wg              sync.WaitGroup
	listener        net.Listener
}

func New(core majority.Service, listenPort int,
	readConsistency majority.ConsistencyLevel) majority.Server {

	return &redisServer{
		core:            core,
		listenPort:      listenPort,
		readConsistency: readConsistency,
	}
}

func (s *redisServer) Start() error {
	var err error

	s.listener, err = net.Listen("tcp", fmt.Sprintf(":%d", s.listenPort))
	if err != nil {
		return err
	}

	started := make(chan struct{})
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		close(started)

		for {
			conn, err := s.listener.Accept()
			if err != nil {
				return
			}

			go s.handleConnection(conn)
		}
	}()
	<-started

	return nil
}

func (s *redisServer) Close() error {
	err := s.listener.Close()
	s.wg.Wait()
	return err
}

func (s *redisServer) handleConnection(conn net.Conn) {
	defer func() {
		if err := conn.Close(); err != nil {
			logrus.WithError(err).Info("unexpected error while closing connection")
		}
	}()

	parser := redisproto.NewParser(conn)
	writer := redisproto.NewWriter(bufio.NewWriter(conn))

	for {
		if err := s.connectionLoop(parser, writer); err != nil {
			logrus.WithError(err).Info("unexpected error while handling connection")
			return
		}
	}
}

func (s *redisServer) connectionLoop(parser *redisproto.Parser, writer *redisproto.Writer) error {
	command, err := parser.ReadCommand()
	if err != nil {
		_, ok := err.(*redisproto.ProtocolError)
		if ok {
			return writer.WriteError(err.Error())
		}

		return majority.ErrClosed
	}

	return s.dispatchCommand(command, writer)
}

func (s *redisServer) dispatchCommand(command *redisproto.Command, writer *redisproto.Writer) error {
	cmd := strings.ToUpper(string(command.Get(0)))
	var err error

	switch cmd {
	case "MAJORITY":
		err = s.handleMajorityCommand(command, writer)

	case "MAJORITYVOTE":
		err = s.handleMajorityVoteCommand(command, writer)

	case "ISMAJORITY":
		err = s.handleIsMajorityCommand(command, writer)

	case "LLEN":
		err = s.handleLenCommand(command, writer)

	case "PING":
		err = s.handlePingCommand(command, writer)

	case "ECHO":
		err = s.handleEchoCommand(command, writer)

	default:
		err = writer.WriteError(fmt.Sprintf("command not supported: %v", cmd))
	}

	if err != nil {
		return err
	}

	if command.IsLast() {
		return writer.Flush()
	}

	return nil
}

func (s *redisServer) handleMajorityCommand(command *redisproto.Command, writer *redisproto.Writer) error {
	if command.ArgCount() != 2 {
		return writer.WriteError("expected 2 arguments for MAJORITY command")
	}

	key := string(command.Get(1))

	request := &majority.MajorityRequest{
		Key: key,
		Options: majority.ReadOptions{
			Consistency: s.readConsistency,
		},
	}

	result, err := s.core.MajorityElement(context.Background(), request)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return writer.WriteBulk(nil)
		}

		return writer.WriteError(err.Error())
	}

	if result == nil || result.Element == nil {
		return writer.WriteError(fmt.Sprintf("result is nil or does not contain an element: %v", result))
	}

	return writer.WriteBulk(result.Element)
}

func (s *redisServer) handleMajorityVoteCommand(command *redisproto.Command, writer *redisproto.Writer) error {
	if command.ArgCount() != 2 {
		return writer.WriteError("expected 2 arguments for MAJORITYVOTE command")
	}

	key := string(command.Get(1))

	request := &majority.MajorityRequest{
		Key: key,
		Options: majority.ReadOptions{
			Consistency: s.readConsistency,
		},
	}

	result, err := s.core.MajorityVote(context.Background(), request)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return writer.WriteBulk(nil)
		}

		return writer.WriteError(err.Error())
	}

	if result == nil || result.Element == nil {
		return writer.WriteError(fmt.Sprintf("result is nil or does not contain an element: %v", result))
	}

	return writer.WriteBulk(result.Element)
}

func (s *redisServer) handleIsMajorityCommand(command *redisproto.Command, writer *redisproto.Writer) error {
	if command.ArgCount() != 3 {
		return writer.WriteError("expected 3 arguments for ISMAJORITY command")
	}

	key := string(command.Get(1))
	value := command.Get(2)

	request := &majority.IsMajorityRequest{
		Key:   key,
		Value: value,
		Options: majority.ReadOptions{
			Consistency: s.readConsistency,
		},
	}

	result, err := s.core.IsMajorityElement(context.Background(), request)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return writer.WriteInt(0)
		}

		return writer.WriteError(err.Error())
	}

	if result.IsMajority {
		return writer.WriteInt(1)
	}

	return writer.WriteInt(0)
}

func (s *redisServer) handleLenCommand(command *redisproto.Command, writer *redisproto.Writer) error {
	if command.ArgCount() != 2 {
		return writer.WriteError("expected 2 arguments for LLEN command")
	}

	key := string(command.Get(1))

	request := &majority.LenRequest{
		Key: key,
		Options: majority.ReadOptions{
			Consistency: s.readConsistency,
		},
	}

	result, err := s.core.SequenceLen(context.Background(), request)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return writer.WriteInt(0)
		}

		return writer.WriteError(err.Error())
	}

	return writer.WriteInt(result.Len)
}

func (s *redisServer) handlePingCommand(command *redisproto.Command, writer *redisproto.Writer) error {
	if command.ArgCount() > 2 {
		return writer.WriteError("expected 1-2 arguments for Ping command")
	}

	if command.ArgCount() == 1 {
		return writer.WriteSimpleString("PONG")
	}

	return writer.WriteBulk(command.Get(1))
}

func (s *redisServer) handleEchoCommand(command *redisproto.Command, writer *redisproto.Writer) error {
	if command.ArgCount() != 2 {
		return writer.WriteError("expected 2 arguments for Echo command")
	}

	return writer.WriteBulk(command.Get(1))
}
