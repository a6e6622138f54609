package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/gophnotes/internal/common"
	pb "github.com/dmitrijs2005/gophnotes/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// noteMethods carry the access token and may be retried after a refresh.
var noteMethods = map[string]bool{
	pb.NotesService_SaveNote_FullMethodName:   true,
	pb.NotesService_ListNotes_FullMethodName:  true,
	pb.NotesService_DeleteNote_FullMethodName: true,
}

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.NotesServiceClient

	mu           sync.Mutex
	accessToken  string
	refreshToken string
}

var _ Client = (*GRPCClient)(nil)

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if !noteMethods[method] {
		return invoker(ctx, method, req, reply, cc, opts...)
	}

	access, refresh := s.Tokens()
	err := invoker(withAccessToken(ctx, access), method, req, reply, cc, opts...)
	if status.Code(err) != codes.Unauthenticated || refresh == "" {
		return err
	}

	if rerr := s.Refresh(ctx); rerr != nil {
		return err
	}

	access, _ = s.Tokens()
	return invoker(withAccessToken(ctx, access), method, req, reply, cc, opts...)
}

// NewGRPCClient dials endpointURL lazily; extra options are appended to
// the defaults (insecure transport, token interceptor).
func NewGRPCClient(endpointURL string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}

	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(endpointURL, opts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.client = pb.NewNotesServiceClient(conn)
	return c, nil
}

func (s *GRPCClient) SetTokens(access, refresh string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken, s.refreshToken = access, refresh
}

func (s *GRPCClient) Tokens() (string, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accessToken, s.refreshToken
}

func (s *GRPCClient) Register(ctx context.Context, email, password string) (string, error) {
	resp, err := s.client.Register(ctx, &pb.RegisterRequest{Email: email, Password: password})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.GetUserId(), nil
}

func (s *GRPCClient) Login(ctx context.Context, email, password string) error {
	resp, err := s.client.Login(ctx, &pb.LoginRequest{Email: email, Password: password})
	if err != nil {
		return s.mapError(err)
	}
	s.SetTokens(resp.GetAccessToken(), resp.GetRefreshToken())
	return nil
}

// Refresh redeems the stored refresh token for a new pair.
func (s *GRPCClient) Refresh(ctx context.Context) error {
	_, refresh := s.Tokens()
	if refresh == "" {
		return ErrUnauthorized
	}

	resp, err := s.client.Refresh(ctx, &pb.RefreshRequest{RefreshToken: refresh})
	if err != nil {
		return s.mapError(err)
	}
	s.SetTokens(resp.GetAccessToken(), resp.GetRefreshToken())
	return nil
}

func (s *GRPCClient) SaveNote(ctx context.Context, in NoteInput) (*Note, error) {
	resp, err := s.client.SaveNote(ctx, &pb.SaveNoteRequest{
		Id:      in.ID,
		Title:   in.Title,
		Content: in.Content,
		Color:   in.Color,
	})
	if err != nil {
		return nil, s.mapError(err)
	}
	n := fromProtoNote(resp)
	return &n, nil
}

func (s *GRPCClient) ListNotes(ctx context.Context) ([]Note, error) {
	resp, err := s.client.ListNotes(ctx, &pb.ListNotesRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	out := make([]Note, 0, len(resp.GetNotes()))
	for _, n := range resp.GetNotes() {
		out = append(out, fromProtoNote(n))
	}
	return out, nil
}

func (s *GRPCClient) DeleteNote(ctx context.Context, id string) error {
	if _, err := s.client.DeleteNote(ctx, &pb.DeleteNoteRequest{Id: id}); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}
	if resp.GetStatus() != "OK" {
		return ErrUnavailable
	}
	return nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

// mapError keeps the server's message, which is safe to show to users.
func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return fmt.Errorf("%w: %s", ErrUnauthorized, st.Message())
	case codes.AlreadyExists:
		return fmt.Errorf("%w: %s", ErrConflict, st.Message())
	case codes.NotFound:
		return ErrNotFound
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", ErrInvalidArgument, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}

func fromProtoNote(n *pb.Note) Note {
	return Note{
		ID:        n.GetId(),
		Title:     n.GetTitle(),
		Content:   n.GetContent(),
		Color:     n.GetColor(),
		CreatedAt: n.GetCreatedAt().AsTime(),
	}
}
