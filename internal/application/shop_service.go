package application

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/stockroom/stockroom/internal/domain"
)

// ShopService is the single entry point adapters use to reach a Store.
// The mutex serializes adapters that dispatch on several goroutines; the
// domain itself is not safe for concurrent use.
type ShopService struct {
	mu     sync.Mutex
	name   string
	store  *domain.Store
	logger *zap.Logger
}

func NewShopService(name string, store *domain.Store, logger *zap.Logger) *ShopService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ShopService{
		name:   name,
		store:  store,
		logger: logger.With(zap.String("store", name)),
	}
}

// NewShopServiceFromCatalog loads the catalog at path and builds the service
// around the resulting store.
func NewShopServiceFromCatalog(loader domain.CatalogLoader, path string, logger *zap.Logger) (*ShopService, error) {
	cfg, err := loader.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	store, err := cfg.BuildStore()
	if err != nil {
		return nil, fmt.Errorf("building store: %w", err)
	}
	svc := NewShopService(cfg.Name(), store, logger)
	svc.logger.Debug("catalog_loaded",
		zap.String("path", path),
		zap.Int("products", len(cfg.Products)),
	)
	return svc, nil
}

func (s *ShopService) Name() string { return s.name }

// ListProducts returns the active products in store order.
func (s *ShopService) ListProducts() []domain.ProductView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return views(s.store.ActiveProducts())
}

// AllProducts returns every product, including inactive ones.
func (s *ShopService) AllProducts() []domain.ProductView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return views(s.store.Products())
}

func (s *ShopService) TotalQuantity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.TotalQuantity()
}

func (s *ShopService) Product(id uuid.UUID) (domain.ProductView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.store.Find(id)
	if err != nil {
		return domain.ProductView{}, err
	}
	return p.Snapshot(), nil
}

// ProductAt resolves a 1-based position in the active listing, the numbering
// shown to menu and CLI users.
func (s *ShopService) ProductAt(position int) (domain.ProductView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	active := s.store.ActiveProducts()
	if position < 1 || position > len(active) {
		return domain.ProductView{}, &domain.ValidationError{
			Reason: fmt.Sprintf("product #%d (have %d)", position, len(active)),
			Err:    domain.ErrProductNotFound,
		}
	}
	return active[position-1].Snapshot(), nil
}

// PlaceOrder runs an order against the store. A returned error means the
// whole order was cancelled; skipped lines are reported in the result.
func (s *ShopService) PlaceOrder(lines []domain.OrderLine) (*domain.OrderResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.store.Order(lines)
	if err != nil {
		s.logger.Error("order_cancelled",
			zap.Int("lines", len(lines)),
			zap.Error(err),
		)
		return nil, err
	}

	for _, line := range result.Failed() {
		s.logger.Warn("order_line_skipped",
			zap.String("product_id", line.ProductID.String()),
			zap.String("product", line.Name),
			zap.Int("requested", line.Requested),
			zap.Error(line.Err),
		)
	}
	s.logger.Info("order_placed",
		zap.Int("lines", len(result.Lines)),
		zap.Int("skipped", len(result.Failed())),
		zap.Float64("total_cost", result.TotalCost),
	)
	return result, nil
}

func (s *ShopService) AddProduct(name string, price float64, quantity int) (domain.ProductView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := domain.NewProduct(name, price, quantity)
	if err != nil {
		return domain.ProductView{}, err
	}
	if err := s.store.AddProduct(p); err != nil {
		return domain.ProductView{}, err
	}
	s.logger.Info("product_added",
		zap.String("product_id", p.ID().String()),
		zap.String("product", p.Name()),
		zap.Int("quantity", p.Quantity()),
	)
	return p.Snapshot(), nil
}

func (s *ShopService) RemoveProduct(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.store.Find(id)
	if err != nil {
		return err
	}
	if err := s.store.RemoveProduct(p); err != nil {
		return err
	}
	s.logger.Info("product_removed", zap.String("product_id", id.String()))
	return nil
}

func (s *ShopService) SetQuantity(id uuid.UUID, quantity int) (domain.ProductView, error) {
	return s.update(id, "quantity_set", func(p *domain.Product) error {
		return p.SetQuantity(quantity)
	})
}

func (s *ShopService) Activate(id uuid.UUID) (domain.ProductView, error) {
	return s.update(id, "product_activated", func(p *domain.Product) error {
		p.Activate()
		return nil
	})
}

func (s *ShopService) Deactivate(id uuid.UUID) (domain.ProductView, error) {
	return s.update(id, "product_deactivated", func(p *domain.Product) error {
		p.Deactivate()
		return nil
	})
}

func (s *ShopService) update(id uuid.UUID, event string, action func(p *domain.Product) error) (domain.ProductView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.store.Find(id)
	if err != nil {
		return domain.ProductView{}, err
	}
	if err := action(p); err != nil {
		return domain.ProductView{}, err
	}
	s.logger.Info(event,
		zap.String("product_id", id.String()),
		zap.Int("quantity", p.Quantity()),
		zap.Bool("active", p.IsActive()),
	)
	return p.Snapshot(), nil
}

func views(products []*domain.Product) []domain.ProductView {
	out := make([]domain.ProductView, 0, len(products))
	for _, p := range products {
		out = append(out, p.Snapshot())
	}
	return out
}
