package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oncotools/tnmrecode/internal/conf"
	"github.com/oncotools/tnmrecode/internal/errors"
)

func testColumns() *conf.ColumnSettings {
	return &conf.ColumnSettings{
		ID:            "record_id",
		ClinicalT:     "clin_t",
		ClinicalN:     "clin_n",
		PathT:         "path_t",
		PathN:         "path_n",
		Metastasis:    "m",
		PositiveNodes: "nodes_positive",
	}
}

func TestReadRecords(t *testing.T) {
	input := strings.Join([]string{
		"record_id,clin_t,clin_n,path_t,path_n,m,nodes_positive",
		"1,T2,N1,,,,",
		"2,,,T1,NX,M1,3",
		"3,t4a,n2c,,,0,",
	}, "\n")

	records, err := ReadRecords(strings.NewReader(input), testColumns())
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "1", records[0].ID)
	assert.Equal(t, "T2", records[0].ClinicalT)
	assert.Equal(t, "N1", records[0].ClinicalN)
	assert.Equal(t, "", records[0].PathN)

	assert.Equal(t, "NX", records[1].PathN)
	assert.Equal(t, "M1", records[1].Metastasis)
	assert.Equal(t, "3", records[1].PositiveNodes)
}

func TestReadRecordsShortRows(t *testing.T) {
	// a row that stops early is padded with blanks, not rejected
	input := "record_id,clin_t,clin_n,path_t,path_n,m,nodes_positive\n7,T1,N0\n"

	records, err := ReadRecords(strings.NewReader(input), testColumns())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "N0", records[0].ClinicalN)
	assert.Equal(t, "", records[0].PositiveNodes)
}

func TestReadRecordsMissingColumn(t *testing.T) {
	input := "record_id,clin_t,clin_n,path_t,path_n,m\n1,T2,N1,,,\n"

	_, err := ReadRecords(strings.NewReader(input), testColumns())
	require.Error(t, err)

	var ee *errors.EnhancedError
	require.True(t, errors.As(err, &ee))
	assert.Equal(t, errors.CategoryFileParsing, ee.Category)
	assert.Contains(t, err.Error(), "nodes_positive")
}

func TestReadRecordsHeaderCaseSensitive(t *testing.T) {
	input := "Record_ID,clin_t,clin_n,path_t,path_n,m,nodes_positive\n"

	_, err := ReadRecords(strings.NewReader(input), testColumns())
	require.Error(t, err)
}

func TestReadRecordsEmptyInput(t *testing.T) {
	_, err := ReadRecords(strings.NewReader(""), testColumns())
	require.Error(t, err)
}
