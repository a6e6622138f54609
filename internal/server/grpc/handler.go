package grpc

import (
	"context"

	pb "github.com/dmitrijs2005/gophnotes/internal/proto"
	"github.com/dmitrijs2005/gophnotes/internal/server/models"
	"github.com/dmitrijs2005/gophnotes/internal/server/services"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {
	user, err := s.auth.Register(ctx, req.GetEmail(), req.GetPassword())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.RegisterResponse{UserId: user.ID, Email: user.Email}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.TokenPair, error) {
	pair, err := s.auth.Login(ctx, req.GetEmail(), req.GetPassword())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.TokenPair{AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken}, nil
}

func (s *GRPCServer) Refresh(ctx context.Context, req *pb.RefreshRequest) (*pb.TokenPair, error) {
	pair, err := s.auth.Refresh(ctx, req.GetRefreshToken())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.TokenPair{AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken}, nil
}

func (s *GRPCServer) SaveNote(ctx context.Context, req *pb.SaveNoteRequest) (*pb.Note, error) {
	note, err := s.notes.Save(ctx, userIDFromContext(ctx), services.NoteInput{
		ID:      req.GetId(),
		Title:   req.GetTitle(),
		Content: req.GetContent(),
		Color:   req.GetColor(),
	})
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return toProtoNote(note), nil
}

func (s *GRPCServer) ListNotes(ctx context.Context, _ *pb.ListNotesRequest) (*pb.ListNotesResponse, error) {
	list, err := s.notes.List(ctx, userIDFromContext(ctx))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	resp := &pb.ListNotesResponse{Notes: make([]*pb.Note, 0, len(list))}
	for _, n := range list {
		resp.Notes = append(resp.Notes, toProtoNote(n))
	}
	return resp, nil
}

func (s *GRPCServer) DeleteNote(ctx context.Context, req *pb.DeleteNoteRequest) (*pb.DeleteNoteResponse, error) {
	if err := s.notes.Delete(ctx, userIDFromContext(ctx), req.GetId()); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.DeleteNoteResponse{}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, _ *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func toProtoNote(n *models.Note) *pb.Note {
	return &pb.Note{
		Id:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		Color:     n.Color,
		CreatedAt: timestamppb.New(n.CreatedAt),
	}
}
