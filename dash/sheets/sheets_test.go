package sheets

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"gopkg.in/h2non/gock.v1"
)

const testCSV = "date,sugarLevel,type,time,notes\n2024-01-01,95,FASTING,07:30,\n"

type SheetsTestSuite struct {
	suite.Suite
}

func TestSheetsTestSuite(t *testing.T) {
	suite.Run(t, new(SheetsTestSuite))
}

func (suite *SheetsTestSuite) AfterTest(_, _ string) {
	gock.Off()
}

func (suite *SheetsTestSuite) TestFetchRemote() {
	gock.New("https://docs.google.com").
		Get("/spreadsheets/d/test-sheet/export").
		MatchParam("format", "csv").
		Reply(200).
		BodyString(testCSV)

	client := New("test-sheet", "testdata/glucose.csv", zap.NewExample())
	text, src, err := client.Fetch(context.Background())
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), SourceRemote, src)
	assert.Equal(suite.T(), testCSV, text)
}

func (suite *SheetsTestSuite) TestFallbackToLocal() {
	gock.New("https://docs.google.com").
		Get("/spreadsheets/d/test-sheet/export").
		Reply(500)

	client := New("test-sheet", "testdata/glucose.csv", zap.NewExample())
	text, src, err := client.Fetch(context.Background())
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), SourceLocal, src)
	assert.Contains(suite.T(), text, "FASTING")
}

func (suite *SheetsTestSuite) TestNoSheetIDGoesLocal() {
	client := New("", "testdata/glucose.csv", zap.NewExample())
	text, src, err := client.Fetch(context.Background())
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), SourceLocal, src)
	assert.NotEmpty(suite.T(), text)
}

func (suite *SheetsTestSuite) TestBothSourcesFail() {
	gock.New("https://docs.google.com").
		Get("/spreadsheets/d/test-sheet/export").
		Reply(503)

	client := New("test-sheet", "testdata/missing.csv", zap.NewExample())
	_, _, err := client.Fetch(context.Background())
	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "test-sheet")
	assert.Contains(suite.T(), err.Error(), "testdata/missing.csv")
	assert.Contains(suite.T(), err.Error(), "sugarLevel")
}

func (suite *SheetsTestSuite) TestLocalFailWithoutRemote() {
	client := New("", "testdata/missing.csv", zap.NewExample())
	_, _, err := client.Fetch(context.Background())
	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "testdata/missing.csv")
	assert.NotContains(suite.T(), err.Error(), "all sources failed")
}
