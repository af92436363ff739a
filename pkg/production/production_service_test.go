package production

import (
	"Bakehouse-Backend/domain"
	"Bakehouse-Backend/entities"
	"Bakehouse-Backend/pkg/issuance"
	"Bakehouse-Backend/pkg/units"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// fakeRepos backs the four repositories the production service talks to.
// CreateSheetWithConsumptions mirrors the transactional contract of the GORM
// repository: a drawdown failure on any line leaves every issuance untouched.
type fakeRepos struct {
	users     map[string]*entities.User
	products  map[string]*entities.FinishedProduct
	issuances map[string]*entities.IssuanceRecord
	sheets    map[string]*entities.ProductionSheet
}

func newFakeRepos() *fakeRepos {
	return &fakeRepos{
		users:     make(map[string]*entities.User),
		products:  make(map[string]*entities.FinishedProduct),
		issuances: make(map[string]*entities.IssuanceRecord),
		sheets:    make(map[string]*entities.ProductionSheet),
	}
}

// ProductionRepository

func (f *fakeRepos) CreateSheetWithConsumptions(_ context.Context, sheet *entities.ProductionSheet, lines []*entities.ConsumptionRecord) error {
	type remainder struct{ principal, complementary float64 }
	staged := make(map[string]remainder)

	for _, line := range lines {
		record, ok := f.issuances[line.IssuanceID.String()]
		if !ok {
			return gorm.ErrRecordNotFound
		}
		current, ok := staged[record.ID.String()]
		if !ok {
			current = remainder{record.RemainingPrincipal, record.RemainingComplementary}
		}
		principal, complementary, err := issuance.Drawdown(current.principal, current.complementary, line.QuantityBase)
		if err != nil {
			return err
		}
		staged[record.ID.String()] = remainder{principal, complementary}
		line.SheetID = sheet.ID
		line.IngredientID = record.IngredientID
	}

	for id, rem := range staged {
		f.issuances[id].RemainingPrincipal = rem.principal
		f.issuances[id].RemainingComplementary = rem.complementary
	}
	sheet.Consumptions = lines
	f.sheets[sheet.ID.String()] = sheet
	return nil
}

func (f *fakeRepos) GetSheetByID(_ context.Context, id string) (*entities.ProductionSheet, error) {
	sheet, ok := f.sheets[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	// mirror the GORM repository's Preload("Product.Catalog")
	if sheet.Product == nil {
		if finished, ok := f.products[sheet.ProductID.String()]; ok {
			sheet.Product = finished
		}
	}
	return sheet, nil
}

func (f *fakeRepos) GetSheets(_ context.Context, _, _ int) ([]*entities.ProductionSheet, int64, error) {
	var result []*entities.ProductionSheet
	for _, sheet := range f.sheets {
		result = append(result, sheet)
	}
	return result, int64(len(result)), nil
}

func (f *fakeRepos) DeleteSheet(_ context.Context, id string) error {
	delete(f.sheets, id)
	return nil
}

// issuance.IssuanceRepository

func (f *fakeRepos) CreateWithDebit(_ context.Context, record *entities.IssuanceRecord) error {
	f.issuances[record.ID.String()] = record
	return nil
}

func (f *fakeRepos) DeleteWithCredit(_ context.Context, record *entities.IssuanceRecord) error {
	delete(f.issuances, record.ID.String())
	return nil
}

func (f *fakeRepos) GetIssuanceByID(_ context.Context, id string) (*entities.IssuanceRecord, error) {
	record, ok := f.issuances[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return record, nil
}

func (f *fakeRepos) GetIssuances(_ context.Context, _, _ int) ([]*entities.IssuanceRecord, int64, error) {
	return nil, 0, nil
}

func (f *fakeRepos) GetAvailableIssuances(_ context.Context) ([]*entities.IssuanceRecord, error) {
	return nil, nil
}

// product.ProductRepository

func (f *fakeRepos) CreateCatalogEntry(_ context.Context, _ *entities.CatalogEntry) error { return nil }

func (f *fakeRepos) GetCatalogEntries(_ context.Context) ([]*entities.CatalogEntry, error) {
	return nil, nil
}

func (f *fakeRepos) GetCatalogEntryByID(_ context.Context, _ string) (*entities.CatalogEntry, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepos) UpdateCatalogEntry(_ context.Context, _ *entities.CatalogEntry) error { return nil }

func (f *fakeRepos) DeleteCatalogEntry(_ context.Context, _ string) error { return nil }

func (f *fakeRepos) CreateProduct(_ context.Context, product *entities.FinishedProduct) error {
	f.products[product.ID.String()] = product
	return nil
}

func (f *fakeRepos) GetProducts(_ context.Context) ([]*entities.FinishedProduct, error) {
	return nil, nil
}

func (f *fakeRepos) GetProductByID(_ context.Context, id string) (*entities.FinishedProduct, error) {
	product, ok := f.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return product, nil
}

func (f *fakeRepos) UpdateProduct(_ context.Context, _ *entities.FinishedProduct) error { return nil }

func (f *fakeRepos) DeleteProduct(_ context.Context, _ string) error { return nil }

// user.UserRepository

func (f *fakeRepos) CreateUser(_ context.Context, user *entities.User) error {
	f.users[user.ID.String()] = user
	return nil
}

func (f *fakeRepos) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (f *fakeRepos) GetUserByUsername(_ context.Context, _ string) (*entities.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepos) GetUsers(_ context.Context) ([]*entities.User, error) { return nil, nil }

func (f *fakeRepos) DeleteUser(_ context.Context, id string) error {
	delete(f.users, id)
	return nil
}

type fixture struct {
	repos    *fakeRepos
	service  ProductionService
	userID   string
	product  *entities.FinishedProduct
	issuance *entities.IssuanceRecord
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	repos := newFakeRepos()

	hash, err := bcrypt.GenerateFromPassword([]byte("segredo123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	staffID := uuid.New()
	signer := &entities.User{
		ID:       uuid.New(),
		Username: "joana",
		Password: string(hash),
		Role:     domain.RolePastry,
		StaffID:  &staffID,
		Staff:    &entities.Staff{ID: staffID, Name: "Joana Lima"},
	}
	require.NoError(t, repos.CreateUser(context.Background(), signer))

	catalog := &entities.CatalogEntry{ID: uuid.New(), Name: "Sourdough Loaf"}
	finished := &entities.FinishedProduct{
		ID:        uuid.New(),
		CatalogID: catalog.ID,
		Catalog:   catalog,
		Quantity:  20,
	}
	require.NoError(t, repos.CreateProduct(context.Background(), finished))

	flour := &entities.Ingredient{
		ID:        uuid.New(),
		Name:      "Wheat Flour",
		UnitClass: units.ClassMass,
	}
	record := &entities.IssuanceRecord{
		ID:                     uuid.New(),
		IngredientID:           flour.ID,
		Ingredient:             flour,
		RemainingPrincipal:     2000,
		RemainingComplementary: 500,
		EntryUnit:              units.UnitKilogram,
		IssuedBase:             2500,
		IssuedAt:               time.Now(),
	}
	require.NoError(t, repos.CreateWithDebit(context.Background(), record))

	return &fixture{
		repos:    repos,
		service:  NewProductionService(repos, repos, repos, repos),
		userID:   signer.ID.String(),
		product:  finished,
		issuance: record,
	}
}

func TestCreateSheetConvertsAndDrawsDown(t *testing.T) {
	fx := newFixture(t)

	response, err := fx.service.CreateSheet(context.Background(), domain.CreateSheetRequest{
		ProductID:     fx.product.ID.String(),
		ProductWeight: 1800,
		Password:      "segredo123",
		Consumptions: []domain.ConsumptionLineRequest{
			{IssuanceID: fx.issuance.ID.String(), Quantity: 1, Unit: units.UnitKilogram},
			{IssuanceID: fx.issuance.ID.String(), Quantity: 300, Unit: units.UnitGram},
		},
	}, fx.userID)
	require.NoError(t, err)

	assert.Equal(t, "Joana Lima", response.SignedBy)
	assert.Equal(t, "Sourdough Loaf", response.ProductName)
	require.Len(t, response.Consumptions, 2)
	assert.Equal(t, 1000.0, response.Consumptions[0].QuantityBase)
	assert.Equal(t, 300.0, response.Consumptions[1].QuantityBase)

	// principal first: 2000 - 1300 = 700, complementary untouched
	assert.Equal(t, 700.0, fx.issuance.RemainingPrincipal)
	assert.Equal(t, 500.0, fx.issuance.RemainingComplementary)
	assert.Equal(t, 2500.0, fx.issuance.IssuedBase)
}

func TestCreateSheetWrongPassword(t *testing.T) {
	fx := newFixture(t)

	_, err := fx.service.CreateSheet(context.Background(), domain.CreateSheetRequest{
		ProductID:     fx.product.ID.String(),
		ProductWeight: 1800,
		Password:      "errada",
		Consumptions: []domain.ConsumptionLineRequest{
			{IssuanceID: fx.issuance.ID.String(), Quantity: 1, Unit: units.UnitKilogram},
		},
	}, fx.userID)
	assert.ErrorIs(t, err, domain.ErrWrongPassword)
	assert.Empty(t, fx.repos.sheets)
	assert.Equal(t, 2000.0, fx.issuance.RemainingPrincipal)
}

func TestCreateSheetOverconsumptionAbortsWholeSheet(t *testing.T) {
	fx := newFixture(t)

	// first line fits, second exceeds the 2500 g remainder; neither applies
	_, err := fx.service.CreateSheet(context.Background(), domain.CreateSheetRequest{
		ProductID:     fx.product.ID.String(),
		ProductWeight: 1800,
		Password:      "segredo123",
		Consumptions: []domain.ConsumptionLineRequest{
			{IssuanceID: fx.issuance.ID.String(), Quantity: 1, Unit: units.UnitKilogram},
			{IssuanceID: fx.issuance.ID.String(), Quantity: 2, Unit: units.UnitKilogram},
		},
	}, fx.userID)
	assert.ErrorIs(t, err, domain.ErrOverconsumption)
	assert.Empty(t, fx.repos.sheets)
	assert.Equal(t, 2000.0, fx.issuance.RemainingPrincipal)
	assert.Equal(t, 500.0, fx.issuance.RemainingComplementary)
}

func TestCreateSheetRejectsEmptyConsumptions(t *testing.T) {
	fx := newFixture(t)

	_, err := fx.service.CreateSheet(context.Background(), domain.CreateSheetRequest{
		ProductID:     fx.product.ID.String(),
		ProductWeight: 1800,
		Password:      "segredo123",
	}, fx.userID)
	assert.ErrorIs(t, err, domain.ErrEmptyConsumptions)
}

func TestCreateSheetRejectsWrongUnitClass(t *testing.T) {
	fx := newFixture(t)

	_, err := fx.service.CreateSheet(context.Background(), domain.CreateSheetRequest{
		ProductID:     fx.product.ID.String(),
		ProductWeight: 1800,
		Password:      "segredo123",
		Consumptions: []domain.ConsumptionLineRequest{
			{IssuanceID: fx.issuance.ID.String(), Quantity: 1, Unit: units.UnitLiter},
		},
	}, fx.userID)
	assert.ErrorIs(t, err, domain.ErrInvalidUnit)
	assert.Equal(t, 2000.0, fx.issuance.RemainingPrincipal)
}

func TestDeleteSheetDoesNotCreditIssuance(t *testing.T) {
	fx := newFixture(t)

	response, err := fx.service.CreateSheet(context.Background(), domain.CreateSheetRequest{
		ProductID:     fx.product.ID.String(),
		ProductWeight: 1800,
		Password:      "segredo123",
		Consumptions: []domain.ConsumptionLineRequest{
			{IssuanceID: fx.issuance.ID.String(), Quantity: 500, Unit: units.UnitGram},
		},
	}, fx.userID)
	require.NoError(t, err)

	require.NoError(t, fx.service.DeleteSheet(context.Background(), response.ID))

	_, err = fx.service.GetSheetByID(context.Background(), response.ID)
	assert.ErrorIs(t, err, domain.ErrSheetNotFound)
	assert.Equal(t, 1500.0, fx.issuance.RemainingPrincipal)
}
