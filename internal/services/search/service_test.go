package search

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KirkDiggler/mixology/internal/clients/cocktaildb"
	clientMocks "github.com/KirkDiggler/mixology/internal/clients/cocktaildb/mocks"
	"github.com/KirkDiggler/mixology/internal/models"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SearchServiceTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockClient *clientMocks.MockClient
	service    Service
	ctx        context.Context

	margarita      *models.Cocktail
	blueMargarita  *models.Cocktail
	strawberryDaiq *models.Cocktail
}

func (s *SearchServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockClient = clientMocks.NewMockClient(s.mockCtrl)
	s.ctx = context.Background()

	s.margarita = &models.Cocktail{ID: "11007", Name: "Margarita"}
	s.blueMargarita = &models.Cocktail{ID: "11118", Name: "Blue Margarita"}
	s.strawberryDaiq = &models.Cocktail{ID: "12162", Name: "Strawberry Daiquiri"}

	svc, err := New(&Config{
		Client:   s.mockClient,
		Debounce: time.Millisecond,
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *SearchServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSearchServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SearchServiceTestSuite))
}

func (s *SearchServiceTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.Equal(ErrNilConfig, err)

	_, err = New(&Config{})
	s.Equal(ErrNilClient, err)
}

func (s *SearchServiceTestSuite) TestSearch() {
	s.mockClient.EXPECT().
		SearchByName(gomock.Any(), "margarita").
		Return([]*models.Cocktail{s.margarita, s.blueMargarita}, nil)

	output, err := s.service.Search(s.ctx, &SearchInput{Query: "  margarita "})
	s.Require().NoError(err)
	s.Len(output.Cocktails, 2)
}

func (s *SearchServiceTestSuite) TestSearchEmptyQuery() {
	output, err := s.service.Search(s.ctx, &SearchInput{Query: "   "})
	s.Require().NoError(err)
	s.Empty(output.Cocktails)
}

func (s *SearchServiceTestSuite) TestSearchNetworkError() {
	s.mockClient.EXPECT().
		SearchByName(gomock.Any(), "margarita").
		Return(nil, cocktaildb.ErrUnreachable)

	output, err := s.service.Search(s.ctx, &SearchInput{Query: "margarita"})
	s.Nil(output)
	s.True(errors.Is(err, ErrNetwork))
	s.True(errors.Is(err, cocktaildb.ErrNetwork))
}

func (s *SearchServiceTestSuite) TestFindCocktailPrefersExactMatch() {
	s.mockClient.EXPECT().
		SearchByName(gomock.Any(), "blue margarita").
		Return([]*models.Cocktail{s.margarita, s.blueMargarita}, nil)

	output, err := s.service.FindCocktail(s.ctx, &FindCocktailInput{Name: "blue margarita"})
	s.Require().NoError(err)
	s.Equal("11118", output.Cocktail.ID)
}

func (s *SearchServiceTestSuite) TestFindCocktailFallsBackToFirst() {
	s.mockClient.EXPECT().
		SearchByName(gomock.Any(), "marga").
		Return([]*models.Cocktail{s.margarita, s.blueMargarita}, nil)

	output, err := s.service.FindCocktail(s.ctx, &FindCocktailInput{Name: "marga"})
	s.Require().NoError(err)
	s.Equal("11007", output.Cocktail.ID)
}

func (s *SearchServiceTestSuite) TestFindCocktailNotFound() {
	s.mockClient.EXPECT().
		SearchByName(gomock.Any(), "zzz").
		Return([]*models.Cocktail{}, nil)

	_, err := s.service.FindCocktail(s.ctx, &FindCocktailInput{Name: "zzz"})
	s.Equal(ErrCocktailNotFound, err)

	_, err = s.service.FindCocktail(s.ctx, &FindCocktailInput{Name: ""})
	s.Equal(ErrEmptyQuery, err)
}

func (s *SearchServiceTestSuite) TestSuggest() {
	s.mockClient.EXPECT().
		SearchByName(gomock.Any(), "marg").
		Return([]*models.Cocktail{s.margarita, s.blueMargarita}, nil)

	output, err := s.service.Suggest(s.ctx, &SuggestInput{SessionID: "user-1", Query: "marg"})
	s.Require().NoError(err)
	s.Equal("marg", output.Suggestions.Query)
	s.Equal([]string{"Margarita", "Blue Margarita"}, output.Suggestions.Names)
}

func (s *SearchServiceTestSuite) TestSuggestShortQueryClearsWithoutFetching() {
	output, err := s.service.Suggest(s.ctx, &SuggestInput{SessionID: "user-1", Query: "m"})
	s.Require().NoError(err)
	s.Empty(output.Suggestions.Names)
}

func (s *SearchServiceTestSuite) TestSuggestNetworkError() {
	s.mockClient.EXPECT().
		SearchByName(gomock.Any(), "marg").
		Return(nil, cocktaildb.ErrUnreachable)

	_, err := s.service.Suggest(s.ctx, &SuggestInput{SessionID: "user-1", Query: "marg"})
	s.True(errors.Is(err, ErrNetwork))
}

func (s *SearchServiceTestSuite) TestSuggestStaleResponseIsDiscarded() {
	started := make(chan struct{})
	release := make(chan struct{})

	s.mockClient.EXPECT().
		SearchByName(gomock.Any(), "mar").
		DoAndReturn(func(ctx context.Context, name string) ([]*models.Cocktail, error) {
			close(started)
			<-release
			return []*models.Cocktail{s.strawberryDaiq}, nil
		})
	s.mockClient.EXPECT().
		SearchByName(gomock.Any(), "marg").
		Return([]*models.Cocktail{s.margarita}, nil)

	staleErr := make(chan error, 1)
	go func() {
		_, err := s.service.Suggest(s.ctx, &SuggestInput{SessionID: "user-1", Query: "mar"})
		staleErr <- err
	}()
	<-started

	output, err := s.service.Suggest(s.ctx, &SuggestInput{SessionID: "user-1", Query: "marg"})
	s.Require().NoError(err)
	s.Equal([]string{"Margarita"}, output.Suggestions.Names)

	// The older response arrives after the newer one has been applied
	close(release)
	s.Equal(ErrSuperseded, <-staleErr)
}

func (s *SearchServiceTestSuite) TestSuggestSessionsAreIndependent() {
	s.mockClient.EXPECT().
		SearchByName(gomock.Any(), "marg").
		Return([]*models.Cocktail{s.margarita}, nil)
	s.mockClient.EXPECT().
		SearchByName(gomock.Any(), "straw").
		Return([]*models.Cocktail{s.strawberryDaiq}, nil)

	first, err := s.service.Suggest(s.ctx, &SuggestInput{SessionID: "user-1", Query: "marg"})
	s.Require().NoError(err)
	second, err := s.service.Suggest(s.ctx, &SuggestInput{SessionID: "user-2", Query: "straw"})
	s.Require().NoError(err)

	s.Equal([]string{"Margarita"}, first.Suggestions.Names)
	s.Equal([]string{"Strawberry Daiquiri"}, second.Suggestions.Names)
}

func (s *SearchServiceTestSuite) TestSuggestContextCancelled() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	// The request may or may not reach the client before it is abandoned
	s.mockClient.EXPECT().SearchByName(gomock.Any(), "marg").Return(nil, nil).AnyTimes()

	_, err := s.service.Suggest(ctx, &SuggestInput{SessionID: "user-1", Query: "marg"})
	s.ErrorIs(err, context.Canceled)
}
