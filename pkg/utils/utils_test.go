package utils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/rxtech-lab/argo-refdata/internal/types"
)

type UtilsTestSuite struct {
	suite.Suite
}

func TestUtilsSuite(t *testing.T) {
	suite.Run(t, new(UtilsTestSuite))
}

func (suite *UtilsTestSuite) TestGetSchemaFromSessionConfig() {
	schema, err := GetSchemaFromConfig(types.SessionConfig{})
	suite.NoError(err)
	suite.NotEmpty(schema)

	var result map[string]any
	suite.NoError(json.Unmarshal([]byte(schema), &result))
	suite.Contains(schema, "offset")
	suite.Contains(schema, "sections")
}

func (suite *UtilsTestSuite) TestGetSchemaFromDocuments() {
	for _, config := range []any{
		types.SessionsDocument{},
		types.CommoditiesDocument{},
		types.ContractsDocument{},
		types.HolidaysDocument{},
	} {
		schema, err := GetSchemaFromConfig(config)
		suite.NoError(err)

		var result map[string]any
		suite.NoError(json.Unmarshal([]byte(schema), &result))
	}
}
