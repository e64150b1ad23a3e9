package impl

import (
	"context"
	"testing"
	"time"

	"nomnom/internal/domain/entity"
	domainerrors "nomnom/internal/domain/errors"
	mockRepo "nomnom/internal/mocks/repository"
	mockSvc "nomnom/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestCatalogService(t *testing.T) (*catalogService, *mockRepo.MockCatalogRepository, *mockSvc.MockQRCodeService) {
	catalog := mockRepo.NewMockCatalogRepository(t)
	qr := mockSvc.NewMockQRCodeService(t)

	svc, ok := NewCatalogService(catalog, qr, testLogger()).(*catalogService)
	require.True(t, ok)
	svc.now = func() time.Time { return mondayNoonUTC }

	return svc, catalog, qr
}

func TestCatalogService_Cities(t *testing.T) {
	svc, catalog, _ := createTestCatalogService(t)

	ghent := entity.City{ID: "ghent", Name: "Ghent"}
	catalog.EXPECT().Cities().Return([]entity.City{testCopenhagen, ghent})

	cities := svc.Cities(context.Background())
	assert.Len(t, cities, 2)
	assert.Equal(t, "Copenhagen", cities["copenhagen"].Name)
	assert.Equal(t, "Ghent", cities["ghent"].Name)
}

func TestCatalogService_Hotspots(t *testing.T) {
	tests := []struct {
		name          string
		simulatedHour *int
		want          []int
	}{
		{"city local clock", nil, []int{66, 82, 64}},
		{"simulated early morning", intPtr(7), []int{36, 15, 96}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, catalog, _ := createTestCatalogService(t)

			catalog.EXPECT().City("copenhagen").Return(testCopenhagen, true)
			catalog.EXPECT().PointsOfInterest("copenhagen").Return([]entity.PointOfInterest{kingsGarden, nyhavn, norreport})

			hotspots, err := svc.Hotspots(context.Background(), "copenhagen", tt.simulatedHour)
			require.NoError(t, err)
			require.Len(t, hotspots, 3)

			for i, want := range tt.want {
				assert.Equal(t, want, hotspots[i].TrafficLevel, hotspots[i].Name)
			}
			assert.Equal(t, "King's Garden", hotspots[0].Name)
		})
	}
}

func TestCatalogService_HotspotsWithPermits(t *testing.T) {
	svc, catalog, _ := createTestCatalogService(t)

	catalog.EXPECT().City("copenhagen").Return(testCopenhagen, true)
	catalog.EXPECT().PointsOfInterest("copenhagen").Return([]entity.PointOfInterest{kingsGarden, nyhavn})
	catalog.EXPECT().PermitStatus("King's Garden", "copenhagen").Return(greenPermit())
	catalog.EXPECT().PermitStatus("Nyhavn", "copenhagen").Return(yellowPermit())

	hotspots, err := svc.HotspotsWithPermits(context.Background(), "copenhagen")
	require.NoError(t, err)
	require.Len(t, hotspots, 2)

	assert.Equal(t, entity.PermitTierGreen, hotspots[0].PermitStatus)
	assert.Equal(t, "Easy Permit", hotspots[0].PermitLabel)
	assert.Equal(t, entity.PermitTierYellow, hotspots[1].PermitStatus)
	assert.Equal(t, "#eab308", hotspots[1].PermitColor)
}

func TestCatalogService_HotspotQRCode(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, catalog, qr := createTestCatalogService(t)

		catalog.EXPECT().City("copenhagen").Return(testCopenhagen, true)
		catalog.EXPECT().Point("copenhagen", "Nyhavn").Return(nyhavn, true)
		qr.EXPECT().GenerateLocationQR("Nyhavn", nyhavn.Coordinate).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

		png, err := svc.HotspotQRCode(context.Background(), "copenhagen", "Nyhavn")
		require.NoError(t, err)
		assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png)
	})

	t.Run("unknown hotspot", func(t *testing.T) {
		svc, catalog, _ := createTestCatalogService(t)

		catalog.EXPECT().City("copenhagen").Return(testCopenhagen, true)
		catalog.EXPECT().Point("copenhagen", "Atlantis").Return(entity.PointOfInterest{}, false)

		_, err := svc.HotspotQRCode(context.Background(), "copenhagen", "Atlantis")
		assert.True(t, errors.Is(err, domainerrors.ErrPlaceNotFound))
	})

	t.Run("encoder failure", func(t *testing.T) {
		svc, catalog, qr := createTestCatalogService(t)

		catalog.EXPECT().City("copenhagen").Return(testCopenhagen, true)
		catalog.EXPECT().Point("copenhagen", "Nyhavn").Return(nyhavn, true)
		qr.EXPECT().GenerateLocationQR("Nyhavn", nyhavn.Coordinate).Return(nil, errors.New("data too long"))

		_, err := svc.HotspotQRCode(context.Background(), "copenhagen", "Nyhavn")
		assert.True(t, errors.Is(err, domainerrors.ErrQRCodeGenerationFailed))
	})
}

func TestCatalogService_PermitGuide(t *testing.T) {
	svc, catalog, _ := createTestCatalogService(t)

	catalog.EXPECT().PermitGuide("ghent").Return(entity.PermitGuide{Title: "Copenhagen Street Vending Permits"})

	guide := svc.PermitGuide(context.Background(), "ghent")
	assert.Equal(t, "Copenhagen Street Vending Permits", guide.Title)
}

func intPtr(v int) *int {
	return &v
}
