package services_test

import (
	"context"
	"testing"

	"github.com/localecart/catalog_backend/internal/apperrors"
	"github.com/localecart/catalog_backend/internal/core/domain"
	"github.com/localecart/catalog_backend/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CategoryLoader ---
type MockCategoryLoader struct {
	mock.Mock
}

func (m *MockCategoryLoader) LoadCategories(ctx context.Context) ([]domain.CategoryTranslation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategoryTranslation), args.Error(1)
}

func testCategories() []domain.CategoryTranslation {
	return []domain.CategoryTranslation{
		{ID: "Fruits", Translations: map[string]string{
			"en": "Fruits",
			"es": "Frutas",
			"de": "Obst",
		}},
		{ID: "Dairy", Translations: map[string]string{
			"en": "Dairy",
			"fr": "Produits laitiers",
		}},
		{ID: "Bakery", Translations: map[string]string{
			"fr": "Boulangerie",
		}},
	}
}

type CategoryServiceTestSuite struct {
	suite.Suite
	mockLoader *MockCategoryLoader
	service    *services.CategoryService
}

func (suite *CategoryServiceTestSuite) SetupTest() {
	suite.mockLoader = new(MockCategoryLoader)
	suite.service = services.NewCategoryService(suite.mockLoader)
}

func (suite *CategoryServiceTestSuite) expectLoad() {
	suite.mockLoader.On("LoadCategories", mock.Anything).Return(testCategories(), nil).Once()
}

func (suite *CategoryServiceTestSuite) TestGetCategoryTranslation_ExactMatch() {
	suite.expectLoad()

	label, err := suite.service.GetCategoryTranslation(context.Background(), "Fruits", "es")

	suite.Require().NoError(err)
	suite.Equal("Frutas", label)
}

func (suite *CategoryServiceTestSuite) TestGetCategoryTranslation_CaseInsensitiveID() {
	suite.expectLoad()

	label, err := suite.service.GetCategoryTranslation(context.Background(), "fruits", "de")

	suite.Require().NoError(err)
	suite.Equal("Obst", label)
}

func (suite *CategoryServiceTestSuite) TestGetCategoryTranslation_CultureTagFallsBackToBaseSubtag() {
	suite.expectLoad()

	label, err := suite.service.GetCategoryTranslation(context.Background(), "Fruits", "de-DE")

	suite.Require().NoError(err)
	suite.Equal("Obst", label)
}

func (suite *CategoryServiceTestSuite) TestGetCategoryTranslation_FallsBackToDefaultLanguage() {
	suite.expectLoad()

	label, err := suite.service.GetCategoryTranslation(context.Background(), "Dairy", "de")

	suite.Require().NoError(err)
	suite.Equal("Dairy", label)
}

func (suite *CategoryServiceTestSuite) TestGetCategoryTranslation_NoDefaultFallsBackToRawID() {
	suite.expectLoad()

	// Bakery has no "en" entry; the raw id is the final fallback.
	label, err := suite.service.GetCategoryTranslation(context.Background(), "Bakery", "de")

	suite.Require().NoError(err)
	suite.Equal("Bakery", label)
}

func (suite *CategoryServiceTestSuite) TestGetCategoryTranslation_UnknownIDReturnsID() {
	suite.expectLoad()

	label, err := suite.service.GetCategoryTranslation(context.Background(), "Electronics", "en")

	suite.Require().NoError(err)
	suite.Equal("Electronics", label)
}

func (suite *CategoryServiceTestSuite) TestGetAllCategoryIDs_LoadOrder() {
	suite.expectLoad()

	ids, err := suite.service.GetAllCategoryIDs(context.Background())

	suite.Require().NoError(err)
	suite.Equal([]string{"Fruits", "Dairy", "Bakery"}, ids)
}

func (suite *CategoryServiceTestSuite) TestGetAllCategoryTranslations() {
	suite.expectLoad()

	labels, err := suite.service.GetAllCategoryTranslations(context.Background(), "fr-CA")

	suite.Require().NoError(err)
	suite.Equal(map[string]string{
		"Fruits": "Fruits",            // no fr entry, en fallback
		"Dairy":  "Produits laitiers", // fr via base subtag
		"Bakery": "Boulangerie",
	}, labels)
}

func (suite *CategoryServiceTestSuite) TestLoadFailureSurfacesAndRetries() {
	ctx := context.Background()
	suite.mockLoader.On("LoadCategories", mock.Anything).Return(nil, assert.AnError).Once()

	_, err := suite.service.GetAllCategoryIDs(ctx)
	suite.ErrorIs(err, apperrors.ErrNotLoaded)

	suite.expectLoad()
	ids, err := suite.service.GetAllCategoryIDs(ctx)
	suite.Require().NoError(err)
	suite.Len(ids, 3)
	suite.mockLoader.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestSingleLoadAcrossCalls() {
	suite.expectLoad()
	ctx := context.Background()

	_, err := suite.service.GetAllCategoryIDs(ctx)
	suite.Require().NoError(err)
	_, err = suite.service.GetCategoryTranslation(ctx, "Fruits", "en")
	suite.Require().NoError(err)

	suite.mockLoader.AssertNumberOfCalls(suite.T(), "LoadCategories", 1)
}

func TestCategoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CategoryServiceTestSuite))
}
