package grpc

import (
	"strconv"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/Belphemur/GameHub/api/proto/v1"
	"github.com/Belphemur/GameHub/internal/catalog"
	"github.com/Belphemur/GameHub/internal/models"
)

const (
	// maxPageSize is the largest page the remote catalog serves
	maxPageSize = 40
	// maxStreamPages bounds how many pages one StreamGames call may walk
	maxStreamPages = 50
	minYear        = 1000
	maxYear        = 9999
)

// convertGameToProto converts a models.Game to a proto Game message
func convertGameToProto(game models.Game) *pb.Game {
	var released *timestamppb.Timestamp
	// Unknown release dates stay unset rather than 0001-01-01
	if game.Released != nil {
		released = timestamppb.New(*game.Released)
	}
	return &pb.Game{
		Id:         int64(game.ID),
		Slug:       game.Slug,
		Name:       game.Name,
		ImageUrl:   game.ImageURL,
		Released:   released,
		Rating:     game.Rating,
		Metacritic: int32(game.Metacritic),
		Genres:     convertGenreRefsToProto(game.Genres),
	}
}

func convertGenreRefsToProto(refs []models.GenreRef) []*pb.GenreRef {
	out := make([]*pb.GenreRef, len(refs))
	for i, ref := range refs {
		out[i] = &pb.GenreRef{Id: int64(ref.ID), Name: ref.Name, Slug: ref.Slug}
	}
	return out
}

// convertGameDetailToProto converts a models.GameDetail to a proto GameDetail message
func convertGameDetailToProto(detail models.GameDetail) *pb.GameDetail {
	return &pb.GameDetail{
		Game:           convertGameToProto(detail.Game),
		DescriptionRaw: detail.DescriptionRaw,
		Platforms:      detail.Platforms,
		Publishers:     detail.Publishers,
		Developers:     detail.Developers,
		Website:        detail.Website,
	}
}

func convertGamesToProto(games []models.Game) []*pb.Game {
	out := make([]*pb.Game, len(games))
	for i, g := range games {
		out[i] = convertGameToProto(g)
	}
	return out
}

// convertGenreToProto converts a models.Genre to a proto Genre message
func convertGenreToProto(genre models.Genre) *pb.Genre {
	return &pb.Genre{
		Id:          int64(genre.ID),
		Name:        genre.Name,
		Slug:        genre.Slug,
		GamesCount:  int64(genre.GamesCount),
		ImageUrl:    genre.ImageURL,
		Description: genre.Description,
	}
}

func convertGenresToProto(genres []models.Genre) []*pb.Genre {
	out := make([]*pb.Genre, len(genres))
	for i, g := range genres {
		out[i] = convertGenreToProto(g)
	}
	return out
}

// listFilter is the filter part shared by ListGamesRequest and StreamGamesRequest
type listFilter interface {
	GetSort() string
	GetGenre() string
	GetYear() int32
	GetSearch() string
	GetPageSize() int32
}

// convertListRequestFromProto reads the list filters of a request. Filters use
// the same navigational keys as the web list; unknown sorts and genres fall
// back to the defaults, while out of range numbers are rejected.
func convertListRequestFromProto(req listFilter) (models.GameQuery, error) {
	if err := checkPageSize(req.GetPageSize()); err != nil {
		return models.GameQuery{}, err
	}
	params := catalog.ListParams{
		Sort:     req.GetSort(),
		Genre:    req.GetGenre(),
		Search:   req.GetSearch(),
		PageSize: int(req.GetPageSize()),
	}
	if year := req.GetYear(); year != 0 {
		if year < minYear || year > maxYear {
			return models.GameQuery{}, status.Errorf(codes.InvalidArgument, "year must be between %d and %d, got %d", minYear, maxYear, year)
		}
		params.Year = strconv.Itoa(int(year))
	}
	return params.Normalize().Query(), nil
}

// checkPageSize accepts 0 (server default) up to maxPageSize
func checkPageSize(size int32) error {
	return checkRange("page_size", size, 0, maxPageSize)
}

func checkRange(field string, v, lo, hi int32) error {
	if v < lo || v > hi {
		return status.Errorf(codes.InvalidArgument, "%s must be between %d and %d, got %d", field, lo, hi, v)
	}
	return nil
}
