package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tonearm/tonearm/internal/model"
	"github.com/tonearm/tonearm/internal/store/memory"
)

func artistInput(name, genre string) ArtistInput {
	return ArtistInput{
		Name:     name,
		Bio:      "Bio for " + name,
		Genre:    genre,
		PhotoURL: "https://images.example.com/" + name + ".jpg",
	}
}

func seedCatalog(t *testing.T, svc *ArtistService) {
	t.Helper()
	ctx := context.Background()
	for _, a := range []ArtistInput{
		artistInput("Nina Delacroix", "Electro-swing"),
		artistInput("The Velvet Needles", "Garage rock"),
		artistInput("Nina Simone Tribute", "Jazz"),
	} {
		_, err := svc.CreateArtist(ctx, a)
		require.NoError(t, err)
	}
}

func TestSearchByNameCaseInsensitive(t *testing.T) {
	svc := NewArtistService(memory.New())
	seedCatalog(t, svc)

	hits, err := svc.SearchByName(context.Background(), "nina")
	require.NoError(t, err)
	require.Len(t, hits, 2)

	hits, err = svc.SearchByName(context.Background(), "zzz")
	require.NoError(t, err)
	require.Empty(t, hits)
}

func TestListByGenre(t *testing.T) {
	svc := NewArtistService(memory.New())
	seedCatalog(t, svc)

	hits, err := svc.ListByGenre(context.Background(), "rock")
	require.NoError(t, err)
	require.Len(t, hits, 1)
	require.Equal(t, "The Velvet Needles", hits[0].Name)
}

func TestArtistStatsDistinctGenres(t *testing.T) {
	ctx := context.Background()
	svc := NewArtistService(memory.New())
	seedCatalog(t, svc)
	_, err := svc.CreateArtist(ctx, artistInput("Second Jazz Act", "Jazz"))
	require.NoError(t, err)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	require.Equal(t, 4, stats.Total)
	require.Equal(t, []string{"Electro-swing", "Garage rock", "Jazz"}, stats.Genres)
}

func TestCreateArtistValidates(t *testing.T) {
	svc := NewArtistService(memory.New())
	_, err := svc.CreateArtist(context.Background(), ArtistInput{Name: "No Bio"})
	require.ErrorIs(t, err, model.ErrValidation)
}
