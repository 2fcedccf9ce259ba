package grpc

import (
	"context"
	"math"
	"strings"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/Belphemur/GameHub/api/proto/v1"
	"github.com/Belphemur/GameHub/internal/client"
	"github.com/Belphemur/GameHub/internal/config"
	"github.com/Belphemur/GameHub/internal/models"
	"github.com/Belphemur/GameHub/internal/search"
)

// defaultStreamPages bounds StreamGames when the request sets no max_pages
const defaultStreamPages = 5

// server implements the CatalogService gRPC service
type server struct {
	pb.UnimplementedCatalogServiceServer
	client client.Client
	logger zerolog.Logger
}

// NewServer creates a new gRPC server instance
func NewServer(c client.Client) pb.CatalogServiceServer {
	return &server{
		client: c,
		logger: config.GetLogger(),
	}
}

// ListGames implements CatalogServiceServer.ListGames
func (s *server) ListGames(ctx context.Context, req *pb.ListGamesRequest) (*pb.ListGamesResponse, error) {
	query, err := convertListRequestFromProto(req)
	if err != nil {
		return nil, err
	}
	if err := checkRange("page", req.GetPage(), 0, math.MaxInt32); err != nil {
		return nil, err
	}
	query.Page = int(req.GetPage())
	s.logger.Debug().Interface("query", query).Msg("ListGames called")

	page, err := s.client.ListGames(ctx, query)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to list games")
		return nil, toStatus(err, "list games")
	}

	s.logger.Debug().Int("count", len(page.Results)).Int("total", page.Count).Msg("ListGames completed")
	return &pb.ListGamesResponse{
		Count:   int64(page.Count),
		HasNext: page.HasNext(),
		Games:   convertGamesToProto(page.Results),
	}, nil
}

// GetGame implements CatalogServiceServer.GetGame
func (s *server) GetGame(ctx context.Context, req *pb.GetGameRequest) (*pb.GetGameResponse, error) {
	if req.GetId() <= 0 || req.GetId() > math.MaxInt32 {
		return nil, status.Errorf(codes.InvalidArgument, "id must be between 1 and %d, got %d", math.MaxInt32, req.GetId())
	}
	id := int(req.GetId())
	s.logger.Debug().Int("game_id", id).Msg("GetGame called")

	detail, err := s.client.GetGame(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int("game_id", id).Msg("Failed to get game")
		return nil, toStatus(err, "get game")
	}
	return &pb.GetGameResponse{Game: convertGameDetailToProto(*detail)}, nil
}

// ListGenres implements CatalogServiceServer.ListGenres
func (s *server) ListGenres(ctx context.Context, req *pb.ListGenresRequest) (*pb.ListGenresResponse, error) {
	if err := checkPageSize(req.GetPageSize()); err != nil {
		return nil, err
	}
	pageSize := int(req.GetPageSize())
	s.logger.Debug().Int("page_size", pageSize).Msg("ListGenres called")

	page, err := s.client.ListGenres(ctx, pageSize)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to list genres")
		return nil, toStatus(err, "list genres")
	}
	return &pb.ListGenresResponse{
		Count:  int64(page.Count),
		Genres: convertGenresToProto(page.Results),
	}, nil
}

// GetGenre implements CatalogServiceServer.GetGenre
func (s *server) GetGenre(ctx context.Context, req *pb.GetGenreRequest) (*pb.GetGenreResponse, error) {
	slug := strings.TrimSpace(req.GetSlug())
	if slug == "" {
		return nil, status.Error(codes.InvalidArgument, "slug is required")
	}
	s.logger.Debug().Str("slug", slug).Msg("GetGenre called")

	genre, err := s.client.GetGenre(ctx, slug)
	if err != nil {
		s.logger.Error().Err(err).Str("slug", slug).Msg("Failed to get genre")
		return nil, toStatus(err, "get genre")
	}
	return &pb.GetGenreResponse{Genre: convertGenreToProto(*genre)}, nil
}

// SearchGames implements CatalogServiceServer.SearchGames. Like the live search
// it only returns displayable entries; blank queries answer an empty list.
func (s *server) SearchGames(ctx context.Context, req *pb.SearchGamesRequest) (*pb.SearchGamesResponse, error) {
	if err := checkPageSize(req.GetPageSize()); err != nil {
		return nil, err
	}
	query := strings.TrimSpace(req.GetQuery())
	if query == "" {
		return &pb.SearchGamesResponse{}, nil
	}
	pageSize := int(req.GetPageSize())
	if pageSize == 0 {
		pageSize = search.DefaultPageSize
	}
	s.logger.Debug().Str("query", query).Int("page_size", pageSize).Msg("SearchGames called")

	page, err := s.client.ListGames(ctx, models.GameQuery{Search: query, PageSize: pageSize})
	if err != nil {
		s.logger.Error().Err(err).Str("query", query).Msg("Failed to search games")
		return nil, toStatus(err, "search games")
	}
	return &pb.SearchGamesResponse{Games: convertGamesToProto(models.DisplayableGames(page.Results))}, nil
}

// StreamGames implements CatalogServiceServer.StreamGames. Games are sent as
// their pages arrive; the first failed page ends the stream with its status.
func (s *server) StreamGames(req *pb.StreamGamesRequest, stream grpc.ServerStreamingServer[pb.Game]) error {
	query, err := convertListRequestFromProto(req)
	if err != nil {
		return err
	}
	if err := checkRange("max_pages", req.GetMaxPages(), 0, maxStreamPages); err != nil {
		return err
	}
	maxPages := int(req.GetMaxPages())
	if maxPages == 0 {
		maxPages = defaultStreamPages
	}
	s.logger.Debug().Interface("query", query).Int("max_pages", maxPages).Msg("StreamGames called")

	ctx, cancel := context.WithCancel(stream.Context())
	defer cancel()

	sent := 0
	for result := range s.client.StreamGames(ctx, query, maxPages) {
		if result.Err != nil {
			s.logger.Error().Err(result.Err).Int("page", result.Page).Msg("Failed to stream games")
			return toStatus(result.Err, "stream games")
		}
		if err := stream.Send(convertGameToProto(result.Value)); err != nil {
			return err
		}
		sent++
	}

	s.logger.Debug().Int("count", sent).Msg("StreamGames completed")
	return nil
}
