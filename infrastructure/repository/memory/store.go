// Package memory implementa os repositórios em memória, usados no modo demonstração
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/vfg2006/shop-pnl-api/infrastructure/repository"
	"github.com/vfg2006/shop-pnl-api/internal/domain"
)

// Store guarda todos os dados em memória e é compartilhado pelos repositórios
type Store struct {
	mu       sync.RWMutex
	entries  map[string]*domain.Entry
	products map[string]*domain.Product
	costs    map[string]*domain.ProductCost
	syncLogs []*domain.SyncLog
}

func NewStore() *Store {
	return &Store{
		entries:  make(map[string]*domain.Entry),
		products: make(map[string]*domain.Product),
		costs:    make(map[string]*domain.ProductCost),
	}
}

func (s *Store) Entries() repository.EntryRepository {
	return &entryRepository{store: s}
}

func (s *Store) Products() repository.ProductRepository {
	return &productRepository{store: s}
}

func (s *Store) ProductCosts() repository.ProductCostRepository {
	return &productCostRepository{store: s}
}

func (s *Store) SyncLogs() repository.SyncLogRepository {
	return &syncLogRepository{store: s}
}

type entryRepository struct {
	store *Store
}

func (r *entryRepository) List(_ context.Context, filters domain.EntryFilters) ([]*domain.Entry, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	entries := make([]*domain.Entry, 0, len(r.store.entries))
	for _, entry := range r.store.entries {
		if filters.Matches(entry) {
			entries = append(entries, r.store.entryWithProduct(entry))
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Date != entries[j].Date {
			return entries[i].Date > entries[j].Date
		}
		if !entries[i].CreatedAt.Equal(entries[j].CreatedAt) {
			return entries[i].CreatedAt.After(entries[j].CreatedAt)
		}
		return entries[i].ID < entries[j].ID
	})

	return entries, nil
}

func (r *entryRepository) GetByID(_ context.Context, id string) (*domain.Entry, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	entry, ok := r.store.entries[id]
	if !ok {
		return nil, nil
	}

	return r.store.entryWithProduct(entry), nil
}

func (r *entryRepository) GetPlatformEntry(_ context.Context, productID, date string) (*domain.Entry, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, entry := range r.store.entries {
		if entry.ProductID == productID && entry.Date == date && entry.Source == domain.EntrySourcePlatform {
			return r.store.entryWithProduct(entry), nil
		}
	}

	return nil, nil
}

func (r *entryRepository) Create(_ context.Context, entry *domain.Entry) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.entries[entry.ID] = copyEntry(entry)
	return nil
}

func (r *entryRepository) BulkCreate(_ context.Context, entries []*domain.Entry) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, entry := range entries {
		r.store.entries[entry.ID] = copyEntry(entry)
	}
	return nil
}

func (r *entryRepository) Update(_ context.Context, entry *domain.Entry) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	current, ok := r.store.entries[entry.ID]
	if !ok {
		return repository.ErrNotFound
	}

	updated := copyEntry(entry)
	updated.Source = current.Source
	updated.CreatedAt = current.CreatedAt
	r.store.entries[entry.ID] = updated

	return nil
}

func (r *entryRepository) Delete(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.entries[id]; !ok {
		return repository.ErrNotFound
	}

	delete(r.store.entries, id)
	return nil
}

type productRepository struct {
	store *Store
}

func (r *productRepository) List(_ context.Context) ([]*domain.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	products := make([]*domain.Product, 0, len(r.store.products))
	for _, product := range r.store.products {
		products = append(products, copyProduct(product))
	}

	sort.SliceStable(products, func(i, j int) bool {
		if products[i].Name != products[j].Name {
			return products[i].Name < products[j].Name
		}
		return products[i].ID < products[j].ID
	})

	return products, nil
}

func (r *productRepository) GetByID(_ context.Context, id string) (*domain.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	product, ok := r.store.products[id]
	if !ok {
		return nil, nil
	}

	return copyProduct(product), nil
}

func (r *productRepository) GetByName(_ context.Context, name string) (*domain.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	name = strings.ToLower(strings.TrimSpace(name))

	var found *domain.Product
	for _, product := range r.store.products {
		if strings.ToLower(product.Name) != name {
			continue
		}
		if found == nil || product.CreatedAt.Before(found.CreatedAt) {
			found = product
		}
	}

	if found == nil {
		return nil, nil
	}

	return copyProduct(found), nil
}

func (r *productRepository) Create(_ context.Context, product *domain.Product) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.products[product.ID] = copyProduct(product)
	return nil
}

func (r *productRepository) AddVariant(_ context.Context, variant *domain.Variant) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	product, ok := r.store.products[variant.ProductID]
	if !ok {
		return repository.ErrNotFound
	}

	v := *variant
	product.Variants = append(product.Variants, &v)
	return nil
}

// Delete remove o produto junto com seus custos e registros
func (r *productRepository) Delete(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.products[id]; !ok {
		return repository.ErrNotFound
	}

	delete(r.store.products, id)

	for entryID, entry := range r.store.entries {
		if entry.ProductID == id {
			delete(r.store.entries, entryID)
		}
	}
	for key, cost := range r.store.costs {
		if cost.ProductID == id {
			delete(r.store.costs, key)
		}
	}

	return nil
}

type productCostRepository struct {
	store *Store
}

func (r *productCostRepository) List(_ context.Context) ([]*domain.ProductCost, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	costs := make([]*domain.ProductCost, 0, len(r.store.costs))
	for _, cost := range r.store.costs {
		c := *cost
		costs = append(costs, &c)
	}

	sort.Slice(costs, func(i, j int) bool {
		if costs[i].ProductID != costs[j].ProductID {
			return costs[i].ProductID < costs[j].ProductID
		}
		return costs[i].VariantID < costs[j].VariantID
	})

	return costs, nil
}

func (r *productCostRepository) Upsert(_ context.Context, cost *domain.ProductCost) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if current, ok := r.store.costs[cost.Key()]; ok {
		cost.ID = current.ID
	}

	c := *cost
	r.store.costs[cost.Key()] = &c
	return nil
}

type syncLogRepository struct {
	store *Store
}

func (r *syncLogRepository) Create(_ context.Context, log *domain.SyncLog) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	l := *log
	r.store.syncLogs = append(r.store.syncLogs, &l)
	return nil
}

func (r *syncLogRepository) Finish(_ context.Context, log *domain.SyncLog) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, current := range r.store.syncLogs {
		if current.ID == log.ID {
			l := *log
			r.store.syncLogs[i] = &l
			return nil
		}
	}

	return repository.ErrNotFound
}

func (r *syncLogRepository) Latest(_ context.Context) (*domain.SyncLog, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var latest *domain.SyncLog
	for _, log := range r.store.syncLogs {
		if latest == nil || !log.StartedAt.Before(latest.StartedAt) {
			latest = log
		}
	}

	if latest == nil {
		return nil, nil
	}

	l := *latest
	return &l, nil
}

// entryWithProduct devolve uma cópia do registro com o produto associado
func (s *Store) entryWithProduct(entry *domain.Entry) *domain.Entry {
	e := copyEntry(entry)
	if product, ok := s.products[e.ProductID]; ok {
		e.Product = &domain.Product{ID: product.ID, Name: product.Name, CreatedAt: product.CreatedAt}
	}
	return e
}

func copyEntry(entry *domain.Entry) *domain.Entry {
	e := *entry
	e.Product = nil
	return &e
}

func copyProduct(product *domain.Product) *domain.Product {
	p := *product
	p.Variants = make([]*domain.Variant, 0, len(product.Variants))
	for _, variant := range product.Variants {
		v := *variant
		p.Variants = append(p.Variants, &v)
	}
	return &p
}
