package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ErrorTestSuite struct {
	suite.Suite
}

func TestErrorSuite(t *testing.T) {
	suite.Run(t, new(ErrorTestSuite))
}

func (suite *ErrorTestSuite) TestNew() {
	err := New(ErrCodeContractNotFound, "contract not found")
	suite.Equal("[302] contract not found", err.Error())
	suite.Equal(ErrCodeContractNotFound, GetCode(err))
}

func (suite *ErrorTestSuite) TestNewf() {
	err := Newf(ErrCodeSessionNotFound, "session %s not found", "fn")
	suite.Contains(err.Error(), "session fn not found")
}

func (suite *ErrorTestSuite) TestWrapUnwrap() {
	cause := fmt.Errorf("yaml: line 3: mapping values are not allowed")
	err := Wrap(ErrCodeConfigParseFailed, "failed to parse sessions file", cause)

	suite.Contains(err.Error(), "failed to parse sessions file")
	suite.Contains(err.Error(), "yaml: line 3")
	suite.Equal(cause, err.Unwrap())
	suite.True(Is(err, cause))
}

func (suite *ErrorTestSuite) TestGetCodeNonError() {
	suite.Equal(ErrCodeUnknown, GetCode(fmt.Errorf("plain error")))
}

func (suite *ErrorTestSuite) TestHasCode() {
	err := New(ErrCodeCommodityNotFound, "commodity not found")
	suite.True(HasCode(err, ErrCodeCommodityNotFound))
	suite.False(HasCode(err, ErrCodeContractNotFound))
}

func (suite *ErrorTestSuite) TestIsNotFound() {
	suite.True(IsNotFound(New(ErrCodeSessionNotFound, "x")))
	suite.True(IsNotFound(New(ErrCodeContractNotFound, "x")))
	suite.False(IsNotFound(New(ErrCodeConfigNotFound, "x")))
	suite.False(IsNotFound(fmt.Errorf("plain")))
}

func (suite *ErrorTestSuite) TestWrappedCodeSurvivesChain() {
	inner := New(ErrCodeContractNotFound, "contract not found")
	outer := fmt.Errorf("lookup failed: %w", inner)
	suite.Equal(ErrCodeContractNotFound, GetCode(outer))
}
