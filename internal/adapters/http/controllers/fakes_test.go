package controllers_test

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/rafaelleal24/estudos/internal/core/domain"
	"github.com/rafaelleal24/estudos/internal/core/serviceerrors"
)

// memoryProducts is an in-memory ProductPort joined against a fixed supplier list.
type memoryProducts struct {
	mu        sync.Mutex
	seq       int
	items     map[domain.ID]domain.Product
	suppliers []*domain.Supplier
	listErr   error
}

func newMemoryProducts(suppliers []*domain.Supplier) *memoryProducts {
	return &memoryProducts{items: map[domain.ID]domain.Product{}, suppliers: suppliers}
}

func (m *memoryProducts) join(p domain.Product) *domain.Product {
	for _, s := range m.suppliers {
		if s.ID == p.SupplierID {
			p.Supplier = s
		}
	}
	return &p
}

func (m *memoryProducts) GetAllWithSuppliers(context.Context) ([]*domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	products := make([]*domain.Product, 0, len(m.items))
	for _, p := range m.items {
		products = append(products, m.join(p))
	}
	sort.Slice(products, func(i, j int) bool { return products[i].Name < products[j].Name })
	return products, nil
}

func (m *memoryProducts) GetByIDWithSupplier(_ context.Context, id domain.ID) (*domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.items[id]
	if !ok {
		return nil, serviceerrors.NewNotFoundError("product not found")
	}
	return m.join(p), nil
}

func (m *memoryProducts) Exists(_ context.Context, id domain.ID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.items[id]
	return ok, nil
}

func (m *memoryProducts) Add(_ context.Context, product *domain.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	product.ID = domain.ID(fmt.Sprintf("%024x", 0xabc000+m.seq))
	m.items[product.ID] = *product
	return nil
}

func (m *memoryProducts) Update(_ context.Context, product *domain.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.items[product.ID]
	if !ok {
		return serviceerrors.NewNotFoundError("product not found")
	}
	updated := *product
	updated.Image = stored.Image
	updated.CreatedAt = stored.CreatedAt
	m.items[product.ID] = updated
	return nil
}

func (m *memoryProducts) Remove(_ context.Context, id domain.ID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[id]; !ok {
		return serviceerrors.NewNotFoundError("product not found")
	}
	delete(m.items, id)
	return nil
}

func (m *memoryProducts) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}

func (m *memoryProducts) get(id domain.ID) (domain.Product, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.items[id]
	return p, ok
}

func (m *memoryProducts) only() domain.Product {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.items {
		return p
	}
	return domain.Product{}
}
