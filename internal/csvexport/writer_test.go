package csvexport

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"sarabun/internal/domain"
)

func TestWriter_RegisterRoundTrip(t *testing.T) {
	rows := []domain.RegisterRow{
		{
			DocumentNumber: "ชร. 0001/2568",
			Name:           "โครงการส่งเสริมเกษตรอินทรีย์",
			Ministry:       "กระทรวงเกษตรและสหกรณ์",
			Agency:         "สำนักงานเกษตรจังหวัดเชียงราย",
			Budget:         500000,
			FiscalYear:     2568,
			RevisionCount:  2,
			LastRevisionNo: "ชร. 0009/2568",
			RegisteredAt:   time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
		},
	}

	var buf bytes.Buffer
	w := NewWriter(&buf)
	assert.NoError(t, w.WriteHeader())
	assert.NoError(t, w.WriteRows(rows))
	w.Flush()
	assert.NoError(t, w.Error())

	records, err := csv.NewReader(&buf).ReadAll()
	assert.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, "Document Number", records[0][0])
	assert.Equal(t, "ชร. 0001/2568", records[1][0])
	assert.Equal(t, "500000.00", records[1][4])
	assert.Equal(t, "2568", records[1][5])
	assert.Equal(t, "2", records[1][6])
	assert.Equal(t, "ชร. 0009/2568", records[1][7])
	assert.Equal(t, "2025-03-10T09:00:00Z", records[1][8])
}

func TestWriter_EmptyRegister(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	assert.NoError(t, w.WriteHeader())
	assert.NoError(t, w.WriteRows(nil))
	w.Flush()

	records, err := csv.NewReader(&buf).ReadAll()
	assert.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "document_register", SanitizeFilename("document register"))
	assert.Equal(t, "a_b_c", SanitizeFilename("a//b??c"))
	assert.Equal(t, "report", SanitizeFilename("__report__"))

	long := strings.Repeat("x", 150)
	assert.Len(t, SanitizeFilename(long), 100)
}

func TestBuildFilename(t *testing.T) {
	name := BuildFilename("document register")
	assert.True(t, strings.HasPrefix(name, "document_register_"))
	assert.True(t, strings.HasSuffix(name, ".csv"))
	assert.Contains(t, name, time.Now().Format("2006-01-02"))
}
