package models_test

import (
	"errors"
	"path/filepath"

	"github.com/fintrack/backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestConnectInvalidPath() {
	// A directory that does not exist cannot hold the database file
	err := models.Connect(filepath.Join(suite.T().TempDir(), "missing", "dir", "db.sqlite"))
	suite.Assert().NotNil(err)

	// Reconnect so that the teardown has an open database to close
	suite.SetupTest()
}

func (suite *TestSuiteStandard) TestNotFoundError() {
	err := models.DB.First(&models.CashFlow{}, "id = ?", uuid.New()).Error
	suite.Require().NotNil(err)

	assert.True(suite.T(), errors.Is(err, models.ErrResourceNotFound))
	assert.Equal(suite.T(), "there is no cash flow matching your query", err.Error())
}

func (suite *TestSuiteStandard) TestClosedDatabaseIsGeneralError() {
	suite.CloseDB()

	err := models.DB.Find(&[]models.Client{}).Error
	assert.Equal(suite.T(), models.ErrGeneral, err)
}

func (suite *TestSuiteStandard) TestRegistryIsMigrated() {
	for _, model := range models.Registry {
		assert.True(suite.T(), models.DB.Migrator().HasTable(model), "%T is not migrated", model)
	}
}
