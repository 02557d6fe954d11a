package queries_test

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"aquasphere/internal/adapters/out/persistence"
	"aquasphere/internal/adapters/out/persistence/orderrepo"
	"aquasphere/internal/core/application/usecases/queries"
	"aquasphere/internal/core/domain/model/kernel"
	"aquasphere/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type GetAllOrdersQueryHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	handler queries.GetAllOrdersQueryHandler
}

func (suite *GetAllOrdersQueryHandlerTestSuite) SetupTest() {
	db, err := persistence.Open(persistence.Options{
		Driver: persistence.DriverSQLite,
		DSN:    filepath.Join(suite.T().TempDir(), "admin_orders.db"),
	})
	suite.Require().NoError(err)
	suite.Require().NoError(persistence.Migrate(db))

	suite.db = db
	suite.handler = queries.NewGetAllOrdersQueryHandler(db)
}

func (suite *GetAllOrdersQueryHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	suite.Require().NoError(sqlDB.Close())
}

func (suite *GetAllOrdersQueryHandlerTestSuite) TestHandle_Empty() {
	query, err := queries.NewGetAllOrdersQuery("", 0, 0)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result.Orders)
	suite.Empty(result.Orders)
	suite.Zero(result.Total)
	suite.Equal(1, result.Page)
	suite.Equal(queries.DefaultAdminPageSize, result.Limit)
	suite.Equal(1, result.TotalPages)
}

func (suite *GetAllOrdersQueryHandlerTestSuite) TestHandle_AllOwnersNewestFirstPaged() {
	start := time.Date(2026, 10, 16, 8, 0, 0, 0, time.UTC)
	var placed []*order.Order
	for i := range 5 {
		placed = append(placed, suite.saveOrder(kernel.NewUUID(), start.Add(time.Duration(i)*time.Hour), order.Pending))
	}

	query, err := queries.NewGetAllOrdersQuery("", 2, 2)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(int64(5), result.Total)
	suite.Equal(2, result.Page)
	suite.Equal(2, result.Limit)
	suite.Equal(3, result.TotalPages)
	suite.Require().Len(result.Orders, 2)
	suite.True(placed[2].ID().IsEqual(result.Orders[0].ID))
	suite.True(placed[1].ID().IsEqual(result.Orders[1].ID))
	suite.True(placed[2].OwnerID().IsEqual(result.Orders[0].OwnerID))
	suite.Require().Len(result.Orders[0].Items, 1)
	suite.Equal("Round gallon refill", result.Orders[0].Items[0].Name)
}

func (suite *GetAllOrdersQueryHandlerTestSuite) TestHandle_StatusFilter() {
	start := time.Date(2026, 10, 16, 8, 0, 0, 0, time.UTC)
	suite.saveOrder(kernel.NewUUID(), start, order.Pending)
	preparing := suite.saveOrder(kernel.NewUUID(), start.Add(time.Hour), order.Preparing)
	suite.saveOrder(kernel.NewUUID(), start.Add(2*time.Hour), order.Pending)

	query, err := queries.NewGetAllOrdersQuery(" Preparing ", 1, 0)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(int64(1), result.Total)
	suite.Require().Len(result.Orders, 1)
	suite.True(preparing.ID().IsEqual(result.Orders[0].ID))
	suite.Equal(order.Preparing, result.Orders[0].Status)
}

func (suite *GetAllOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	_, err := suite.handler.Handle(context.Background(), queries.GetAllOrdersQuery{})

	suite.Require().ErrorIs(err, queries.ErrGetAllOrdersQueryIsNotConstructed)
}

// saveOrder stores a cash order of one round gallon refill, moved to status by an admin.
func (suite *GetAllOrdersQueryHandlerTestSuite) saveOrder(owner kernel.UUID, placed time.Time, status order.Status) *order.Order {
	item, err := order.NewItem("Round gallon refill", decimal.NewFromInt(30), 1)
	suite.Require().NoError(err)
	details, err := order.NewDeliveryDetails(json.RawMessage(`{"city":"Santo Tomas"}`), "", "")
	suite.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), owner, order.CashOnDelivery, []order.Item{item},
		order.DefaultDeliveryFee, details, placed)
	suite.Require().NoError(err)
	if status != order.Pending {
		admin, adminErr := order.NewAdmin(kernel.NewUUID())
		suite.Require().NoError(adminErr)
		suite.Require().NoError(o.ChangeStatus(admin, status, placed))
	}

	suite.Require().NoError(orderrepo.NewGormOrderRepository(suite.db).Add(context.Background(), o))
	return o
}

func TestGetAllOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetAllOrdersQueryHandlerTestSuite))
}

func TestNewGetAllOrdersQuery(t *testing.T) {
	query, err := queries.NewGetAllOrdersQuery("", -3, 500)
	require.NoError(t, err)
	assert.Empty(t, query.Status())
	assert.Equal(t, 1, query.Page().Number())
	assert.Equal(t, 100, query.Page().Limit())

	_, err = queries.NewGetAllOrdersQuery("lost", 1, 10)
	require.ErrorIs(t, err, order.ErrInvalidTarget)
}

func TestGetAllOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	err := queries.GetAllOrdersQuery{}.Validate()
	require.ErrorIs(t, err, queries.ErrGetAllOrdersQueryIsNotConstructed)
}
