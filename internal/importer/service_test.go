package importer_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wrenchbill/internal/importer"
	"wrenchbill/internal/parts"
)

type fakePartsRepo struct {
	parts []parts.Part
}

func (f *fakePartsRepo) List(ctx context.Context) ([]parts.Part, error) {
	return f.parts, nil
}

func (f *fakePartsRepo) Save(ctx context.Context, all []parts.Part) error {
	f.parts = all
	return nil
}

func TestImport(t *testing.T) {
	repo := &fakePartsRepo{}
	svc := importer.NewService(parts.NewService(repo))

	sheet := `Part Number,Description,List Price,Manufacturer,Category
BP-1234,Front Brake Pads,45.99,Bosch,Brakes
OF-4967,Oil Filter,8.99,Motorcraft,Filters
XX-0001,Bad price,n/a,Bosch,Brakes
`

	added, skipped, err := svc.Import(context.Background(), importer.FormatPriceList, strings.NewReader(sheet))
	require.NoError(t, err)
	assert.Equal(t, 2, added)
	assert.Equal(t, 0, skipped, "unparseable rows are dropped by the parser, not counted")

	require.Len(t, repo.parts, 2)
	assert.Equal(t, "BP-1234", repo.parts[0].PartNumber)
	assert.Equal(t, "45.99", repo.parts[0].Price.StringFixed(2))
	assert.NotNil(t, repo.parts[0].LastUpdated, "imported prices count as freshly confirmed")
}

func TestImport_UnknownFormat(t *testing.T) {
	repo := &fakePartsRepo{}
	svc := importer.NewService(parts.NewService(repo))

	_, _, err := svc.Import(context.Background(), importer.Format("xml"), strings.NewReader(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown import format")
	assert.Empty(t, repo.parts)
}
