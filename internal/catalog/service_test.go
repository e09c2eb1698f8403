package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/Lucky44/SC-fleet-manager/internal/models"
	"github.com/Lucky44/SC-fleet-manager/internal/scunpacked"
)

// stubSource counts fetches so the tests can assert on caching behaviour.
type stubSource struct {
	ships      []scunpacked.RawShip
	items      []scunpacked.RawItem
	portsErr   error
	shipCalls  int
	itemCalls  int
	portsCalls int
}

func (s *stubSource) FetchShips(context.Context) ([]scunpacked.RawShip, error) {
	s.shipCalls++
	return s.ships, nil
}

func (s *stubSource) FetchItems(context.Context) ([]scunpacked.RawItem, error) {
	s.itemCalls++
	return s.items, nil
}

func (s *stubSource) FetchShipPorts(context.Context, string) (scunpacked.PortDoc, error) {
	s.portsCalls++
	if s.portsErr != nil {
		return nil, s.portsErr
	}
	return scunpacked.PortDoc{
		"hardpoints": {{Name: "hardpoint_shield", Types: []string{"Shield.ShieldGenerator"}}},
	}, nil
}

func TestServiceCachesCatalogs(t *testing.T) {
	src := &stubSource{
		ships: []scunpacked.RawShip{{ClassName: "AEGS_Gladius", Name: "Aegis Gladius"}},
	}
	svc := NewService(src)
	ctx := context.Background()

	if _, err := svc.Ships(ctx); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Ships(ctx); err != nil {
		t.Fatal(err)
	}
	if src.shipCalls != 1 {
		t.Errorf("ship fetches = %d, want 1", src.shipCalls)
	}

	if _, err := svc.Ports(ctx, "AEGS_Gladius"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Ports(ctx, "AEGS_Gladius"); err != nil {
		t.Fatal(err)
	}
	if src.portsCalls != 1 {
		t.Errorf("port fetches = %d, want 1", src.portsCalls)
	}
}

func TestServiceRefreshReloads(t *testing.T) {
	src := &stubSource{}
	svc := NewService(src)
	ctx := context.Background()

	if _, err := svc.Ships(ctx); err != nil {
		t.Fatal(err)
	}
	if _, _, err := svc.Refresh(ctx); err != nil {
		t.Fatal(err)
	}
	if src.shipCalls != 2 {
		t.Errorf("ship fetches after refresh = %d, want 2", src.shipCalls)
	}
	if src.itemCalls != 1 {
		t.Errorf("item fetches after refresh = %d, want 1", src.itemCalls)
	}
}

func TestServicePortsDegradeToPatches(t *testing.T) {
	// The Polaris has no upstream document; a fetch failure must still yield
	// its hand-described ports.
	src := &stubSource{portsErr: errors.New("404")}
	svc := NewService(src)

	ports, err := svc.Ports(context.Background(), "RSI_Polaris")
	if err != nil {
		t.Fatalf("Ports: %v", err)
	}
	if len(ports) == 0 {
		t.Error("expected patched ports despite fetch failure")
	}

	// An unpatched ship degrades to an empty list, never nil.
	ports, err = svc.Ports(context.Background(), "AEGS_Gladius")
	if err != nil {
		t.Fatalf("Ports: %v", err)
	}
	if ports == nil {
		t.Error("ports must never be nil")
	}
	if len(ports) != 0 {
		t.Errorf("unexpected ports for failed fetch: %+v", ports)
	}
}

func TestServiceSetImages(t *testing.T) {
	src := &stubSource{
		ships: []scunpacked.RawShip{{ClassName: "AEGS_Gladius", Name: "Aegis Gladius"}},
	}
	svc := NewService(src)

	if _, err := svc.Ships(context.Background()); err != nil {
		t.Fatal(err)
	}

	svc.SetImages(map[string]models.ShipImages{
		"aegis gladius": {Large: "https://img/large.jpg", Small: "https://img/small.jpg"},
	})

	ships, _ := svc.Ships(context.Background())
	ship, ok := ShipByClass(ships, "AEGS_Gladius")
	if !ok {
		t.Fatal("Gladius missing")
	}
	if ship.ImageURL != "https://img/large.jpg" || ship.ImageURLSmall != "https://img/small.jpg" {
		t.Errorf("images not applied: %+v", ship)
	}
}
