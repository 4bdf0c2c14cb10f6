package cocktaildb

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"
)

const margaritaResponse = `{"drinks":[{
	"idDrink":"11007",
	"strDrink":"Margarita",
	"strDrinkThumb":"https://www.thecocktaildb.com/images/media/drink/5noda61589575158.jpg",
	"strInstructions":"Rub the rim of the glass with the lime slice.",
	"strAlcoholic":"Alcoholic",
	"strIngredient1":"Tequila","strMeasure1":"1 1/2 oz ",
	"strIngredient2":"Triple sec","strMeasure2":"1/2 oz ",
	"strIngredient3":"Lime juice","strMeasure3":"1 oz ",
	"strIngredient4":"Salt","strMeasure4":null,
	"strIngredient5":null,"strMeasure5":null,
	"strIngredient15":null,"strMeasure15":null,
	"dateModified":"2015-08-18 14:42:59"
}]}`

type ClientTestSuite struct {
	suite.Suite
	server   *httptest.Server
	handler  http.HandlerFunc
	lastPath string
	lastName string
	client   Client
}

func (s *ClientTestSuite) SetupTest() {
	s.handler = nil
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.lastPath = r.URL.Path
		s.lastName = r.URL.Query().Get("s")
		s.handler(w, r)
	}))

	client, err := New(&Config{BaseURL: s.server.URL + "/api/json/v1/1/"})
	s.Require().NoError(err)
	s.client = client
}

func (s *ClientTestSuite) TearDownTest() {
	s.server.Close()
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) respond(status int, body string) {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func (s *ClientTestSuite) TestNewRequiresConfig() {
	_, err := New(nil)
	s.Error(err)
}

func (s *ClientTestSuite) TestSearchByName() {
	s.respond(http.StatusOK, margaritaResponse)

	cocktails, err := s.client.SearchByName(context.Background(), "marg arita")
	s.Require().NoError(err)
	s.Equal("/api/json/v1/1/search.php", s.lastPath)
	s.Equal("marg arita", s.lastName)

	s.Require().Len(cocktails, 1)
	cocktail := cocktails[0]
	s.Equal("11007", cocktail.ID)
	s.Equal("Margarita", cocktail.Name)
	s.Equal("Alcoholic", cocktail.Alcoholic)
	s.Contains(cocktail.Instructions, "lime slice")

	s.Require().Len(cocktail.Ingredients, 4)
	s.Equal("Tequila", cocktail.Ingredients[0].Ingredient)
	s.Equal("1 1/2 oz ", cocktail.Ingredients[0].Measure)
	s.Equal("Salt", cocktail.Ingredients[3].Ingredient)
	s.Empty(cocktail.Ingredients[3].Measure)
	s.Equal([]string{"1 1/2 oz Tequila", "1/2 oz Triple sec", "1 oz Lime juice", "Salt"}, cocktail.IngredientList())
}

func (s *ClientTestSuite) TestSearchByNameKeepsPositionsOfGaps() {
	s.respond(http.StatusOK, `{"drinks":[{"idDrink":"1","strDrink":"Gappy",
		"strIngredient1":"Lime","strIngredient2":null,"strIngredient3":"Rum","strMeasure3":"2 oz"}]}`)

	cocktails, err := s.client.SearchByName(context.Background(), "gappy")
	s.Require().NoError(err)
	s.Require().Len(cocktails[0].Ingredients, 3)
	s.False(cocktails[0].Ingredients[1].Present())
	s.Equal("Rum", cocktails[0].Ingredients[2].Ingredient)
}

func (s *ClientTestSuite) TestSearchByNameNoMatches() {
	s.respond(http.StatusOK, `{"drinks":null}`)

	cocktails, err := s.client.SearchByName(context.Background(), "zzz")
	s.Require().NoError(err)
	s.NotNil(cocktails)
	s.Empty(cocktails)
}

func (s *ClientTestSuite) TestSearchByNameServerError() {
	s.respond(http.StatusServiceUnavailable, `oops`)

	_, err := s.client.SearchByName(context.Background(), "margarita")
	s.Require().Error(err)
	s.True(errors.Is(err, ErrUnreachable))
	s.True(errors.Is(err, ErrNetwork))
}

func (s *ClientTestSuite) TestSearchByNameMalformed() {
	s.respond(http.StatusOK, `<html>rate limited</html>`)

	_, err := s.client.SearchByName(context.Background(), "margarita")
	s.Require().Error(err)
	s.True(errors.Is(err, ErrMalformedResponse))
	s.True(errors.Is(err, ErrNetwork))
	s.False(errors.Is(err, ErrUnreachable))
}

func (s *ClientTestSuite) TestSearchByNameWrongFieldType() {
	s.respond(http.StatusOK, `{"drinks":[{"idDrink":11007,"strDrink":"Margarita"}]}`)

	_, err := s.client.SearchByName(context.Background(), "margarita")
	s.True(errors.Is(err, ErrMalformedResponse))
}

func (s *ClientTestSuite) TestSearchByNameUnreachable() {
	s.server.Close()

	_, err := s.client.SearchByName(context.Background(), "margarita")
	s.True(errors.Is(err, ErrNetwork))
}

func (s *ClientTestSuite) TestSearchByNameCancelled() {
	s.respond(http.StatusOK, margaritaResponse)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.client.SearchByName(ctx, "margarita")
	s.True(errors.Is(err, ErrNetwork))
}
