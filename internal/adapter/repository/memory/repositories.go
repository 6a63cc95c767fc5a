package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/hugohenrick/erp-servicos/internal/domain/activity"
	"github.com/hugohenrick/erp-servicos/internal/domain/customer"
	"github.com/hugohenrick/erp-servicos/internal/domain/customerproduct"
	"github.com/hugohenrick/erp-servicos/internal/domain/lifecycle"
	"github.com/hugohenrick/erp-servicos/internal/domain/product"
	"github.com/hugohenrick/erp-servicos/internal/domain/template"
	"github.com/hugohenrick/erp-servicos/internal/domain/touchpoint"
	"github.com/hugohenrick/erp-servicos/internal/domain/transaction"
)

type productRepository struct {
	s    *Store
	undo *undoLog
}

func copyProduct(p *product.Product) *product.Product {
	c := *p
	c.ServiceFlowConfig = p.ServiceFlowConfig.Clone()
	if p.UsageDurationDays != nil {
		days := *p.UsageDurationDays
		c.UsageDurationDays = &days
	}
	return &c
}

func (r *productRepository) Create(_ context.Context, p *product.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	put(r.undo, r.s.data.products, p.ID, copyProduct(p))
	return nil
}

func (r *productRepository) FindByID(_ context.Context, id string) (*product.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.data.products[id]
	if !ok {
		return nil, product.ErrProductNotFound
	}
	return copyProduct(p), nil
}

func (r *productRepository) List(_ context.Context, limit, offset int) ([]*product.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	all := make([]*product.Product, 0, len(r.s.data.products))
	for _, p := range r.s.data.products {
		all = append(all, copyProduct(p))
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return page(all, limit, offset), nil
}

func (r *productRepository) Count(_ context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.data.products), nil
}

func (r *productRepository) Update(_ context.Context, p *product.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.data.products[p.ID]; !ok {
		return product.ErrProductNotFound
	}
	put(r.undo, r.s.data.products, p.ID, copyProduct(p))
	return nil
}

func (r *productRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.data.products[id]; !ok {
		return product.ErrProductNotFound
	}
	remove(r.undo, r.s.data.products, id)
	return nil
}

type customerRepository struct {
	s    *Store
	undo *undoLog
}

func copyCustomer(c *customer.Customer) *customer.Customer {
	out := *c
	if c.LastPurchaseAt != nil {
		at := *c.LastPurchaseAt
		out.LastPurchaseAt = &at
	}
	return &out
}

func (r *customerRepository) Create(_ context.Context, c *customer.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	put(r.undo, r.s.data.customers, c.ID, copyCustomer(c))
	return nil
}

func (r *customerRepository) FindByID(_ context.Context, id string) (*customer.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.data.customers[id]
	if !ok {
		return nil, customer.ErrCustomerNotFound
	}
	return copyCustomer(c), nil
}

func (r *customerRepository) List(ctx context.Context, limit, offset int) ([]*customer.Customer, error) {
	return r.FindByName(ctx, "", limit, offset)
}

func (r *customerRepository) FindByName(_ context.Context, name string, limit, offset int) ([]*customer.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	needle := strings.ToLower(name)
	all := make([]*customer.Customer, 0)
	for _, c := range r.s.data.customers {
		if strings.Contains(strings.ToLower(c.Name), needle) {
			all = append(all, copyCustomer(c))
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return page(all, limit, offset), nil
}

func (r *customerRepository) Count(_ context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.data.customers), nil
}

func (r *customerRepository) Update(_ context.Context, c *customer.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.data.customers[c.ID]; !ok {
		return customer.ErrCustomerNotFound
	}
	put(r.undo, r.s.data.customers, c.ID, copyCustomer(c))
	return nil
}

func (r *customerRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.data.customers[id]; !ok {
		return customer.ErrCustomerNotFound
	}
	remove(r.undo, r.s.data.customers, id)
	return nil
}

func (r *customerRepository) UpdateStatus(_ context.Context, id string, status customer.Status) error {
	return r.modify(id, func(c *customer.Customer) {
		c.Status = status
		c.UpdatedAt = time.Now()
	})
}

func (r *customerRepository) TouchLastPurchase(_ context.Context, id string, at time.Time) error {
	return r.modify(id, func(c *customer.Customer) { c.UpdateLastPurchase(at) })
}

func (r *customerRepository) modify(id string, fn func(c *customer.Customer)) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.data.customers[id]
	if !ok {
		return customer.ErrCustomerNotFound
	}
	updated := copyCustomer(c)
	fn(updated)
	put(r.undo, r.s.data.customers, id, updated)
	return nil
}

type transactionRepository struct {
	s    *Store
	undo *undoLog
}

func copyTransaction(t *transaction.Transaction) *transaction.Transaction {
	out := *t
	out.Items = make([]*transaction.Item, len(t.Items))
	for i, item := range t.Items {
		c := *item
		if item.ServiceStartDate != nil {
			d := *item.ServiceStartDate
			c.ServiceStartDate = &d
		}
		out.Items[i] = &c
	}
	return &out
}

func (r *transactionRepository) Create(_ context.Context, t *transaction.Transaction) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	put(r.undo, r.s.data.transactions, t.ID, copyTransaction(t))
	r.s.data.transactionOrder = append(r.s.data.transactionOrder, t.ID)
	r.undo.add(func() {
		r.s.data.transactionOrder = removeFirst(r.s.data.transactionOrder, func(id string) bool { return id == t.ID })
	})
	return nil
}

func (r *transactionRepository) FindByID(_ context.Context, id string) (*transaction.Transaction, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	t, ok := r.s.data.transactions[id]
	if !ok {
		return nil, transaction.ErrTransactionNotFound
	}
	return copyTransaction(t), nil
}

func (r *transactionRepository) List(_ context.Context, limit, offset int) ([]*transaction.Transaction, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	all := make([]*transaction.Transaction, 0, len(r.s.data.transactionOrder))
	for i := len(r.s.data.transactionOrder) - 1; i >= 0; i-- {
		all = append(all, copyTransaction(r.s.data.transactions[r.s.data.transactionOrder[i]]))
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].TransactionDate.After(all[j].TransactionDate)
	})
	return page(all, limit, offset), nil
}

func (r *transactionRepository) Count(_ context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.data.transactions), nil
}

func (r *transactionRepository) CountByNumberPrefix(_ context.Context, prefix string) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	count := 0
	for _, t := range r.s.data.transactions {
		if strings.HasPrefix(t.TransactionNo, prefix) {
			count++
		}
	}
	return count, nil
}

func (r *transactionRepository) UpdatePaymentStatus(_ context.Context, id string, status transaction.PaymentStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, ok := r.s.data.transactions[id]
	if !ok {
		return transaction.ErrTransactionNotFound
	}
	updated := copyTransaction(t)
	updated.PaymentStatus = status
	updated.UpdatedAt = time.Now()
	put(r.undo, r.s.data.transactions, id, updated)
	return nil
}

type customerProductRepository struct {
	s    *Store
	undo *undoLog
}

func copyCustomerProduct(cp *customerproduct.CustomerProduct) *customerproduct.CustomerProduct {
	out := *cp
	out.FlowConfig = cp.FlowConfig.Clone()
	return &out
}

func (r *customerProductRepository) Create(_ context.Context, cp *customerproduct.CustomerProduct) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.data.customerProducts {
		if existing.TransactionItemID == cp.TransactionItemID {
			return customerproduct.ErrAlreadyExists
		}
	}
	put(r.undo, r.s.data.customerProducts, cp.ID, copyCustomerProduct(cp))
	return nil
}

func (r *customerProductRepository) FindByID(_ context.Context, id string) (*customerproduct.CustomerProduct, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	cp, ok := r.s.data.customerProducts[id]
	if !ok {
		return nil, customerproduct.ErrCustomerProductNotFound
	}
	return copyCustomerProduct(cp), nil
}

func (r *customerProductRepository) FindByCustomer(_ context.Context, customerID string) ([]*customerproduct.CustomerProduct, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	result := make([]*customerproduct.CustomerProduct, 0)
	for _, cp := range r.s.data.customerProducts {
		if cp.CustomerID == customerID {
			result = append(result, copyCustomerProduct(cp))
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].InstallationDate.Equal(result[j].InstallationDate) {
			return result[i].InstallationDate.After(result[j].InstallationDate)
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *customerProductRepository) ExistsForItem(_ context.Context, transactionItemID string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, cp := range r.s.data.customerProducts {
		if cp.TransactionItemID == transactionItemID {
			return true, nil
		}
	}
	return false, nil
}

func (r *customerProductRepository) UpdateStatus(_ context.Context, id string, status customerproduct.Status) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp, ok := r.s.data.customerProducts[id]
	if !ok {
		return customerproduct.ErrCustomerProductNotFound
	}
	updated := copyCustomerProduct(cp)
	updated.Status = status
	put(r.undo, r.s.data.customerProducts, id, updated)
	return nil
}

type touchpointRepository struct {
	s    *Store
	undo *undoLog
}

func copyTouchpoint(t *touchpoint.Touchpoint) *touchpoint.Touchpoint {
	out := *t
	if t.MessageTemplateID != nil {
		id := *t.MessageTemplateID
		out.MessageTemplateID = &id
	}
	if t.SentAt != nil {
		at := *t.SentAt
		out.SentAt = &at
	}
	if t.CompletedAt != nil {
		at := *t.CompletedAt
		out.CompletedAt = &at
	}
	return &out
}

func sortTouchpoints(list []*touchpoint.Touchpoint) {
	sort.Slice(list, func(i, j int) bool {
		if !list[i].ScheduledDate.Equal(list[j].ScheduledDate) {
			return list[i].ScheduledDate.Before(list[j].ScheduledDate)
		}
		return list[i].MonthOffset < list[j].MonthOffset
	})
}

func (r *touchpointRepository) CreateBatch(_ context.Context, touchpoints []*touchpoint.Touchpoint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, t := range touchpoints {
		put(r.undo, r.s.data.touchpoints, t.ID, copyTouchpoint(t))
	}
	return nil
}

func (r *touchpointRepository) FindByID(_ context.Context, id string) (*touchpoint.Touchpoint, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	t, ok := r.s.data.touchpoints[id]
	if !ok {
		return nil, touchpoint.ErrTouchpointNotFound
	}
	return copyTouchpoint(t), nil
}

func (r *touchpointRepository) FindByCustomerProduct(_ context.Context, customerProductID string) ([]*touchpoint.Touchpoint, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	result := make([]*touchpoint.Touchpoint, 0)
	for _, t := range r.s.data.touchpoints {
		if t.CustomerProductID == customerProductID {
			result = append(result, copyTouchpoint(t))
		}
	}
	sortTouchpoints(result)
	return result, nil
}

func (r *touchpointRepository) List(_ context.Context, filter touchpoint.Filter) ([]*touchpoint.Touchpoint, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	result := make([]*touchpoint.Touchpoint, 0)
	for _, t := range r.s.data.touchpoints {
		if filter.Status != "" && t.Status != filter.Status {
			continue
		}
		if filter.DueBefore != nil && t.ScheduledDate.After(*filter.DueBefore) {
			continue
		}
		result = append(result, copyTouchpoint(t))
	}
	sortTouchpoints(result)
	return page(result, filter.Limit, filter.Offset), nil
}

func (r *touchpointRepository) UpdateStatus(_ context.Context, t *touchpoint.Touchpoint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	current, ok := r.s.data.touchpoints[t.ID]
	if !ok {
		return touchpoint.ErrTouchpointNotFound
	}
	updated := copyTouchpoint(current)
	updated.Status = t.Status
	updated.SentAt = t.SentAt
	updated.CompletedAt = t.CompletedAt
	updated.UpdatedAt = t.UpdatedAt
	put(r.undo, r.s.data.touchpoints, t.ID, copyTouchpoint(updated))
	return nil
}

type templateRepository struct {
	s    *Store
	undo *undoLog
}

func copyTemplate(t *template.MessageTemplate) *template.MessageTemplate {
	out := *t
	out.Variables = append([]string(nil), t.Variables...)
	return &out
}

func (r *templateRepository) Create(_ context.Context, t *template.MessageTemplate) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	put(r.undo, r.s.data.templates, t.ID, copyTemplate(t))
	return nil
}

func (r *templateRepository) FindByID(_ context.Context, id string) (*template.MessageTemplate, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	t, ok := r.s.data.templates[id]
	if !ok {
		return nil, template.ErrTemplateNotFound
	}
	return copyTemplate(t), nil
}

func (r *templateRepository) FindDefault(_ context.Context, phase lifecycle.Phase) (*template.MessageTemplate, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var found *template.MessageTemplate
	for _, t := range r.s.data.templates {
		if t.Type == phase && t.IsDefault && (found == nil || t.UpdatedAt.After(found.UpdatedAt)) {
			found = t
		}
	}
	if found == nil {
		return nil, template.ErrTemplateNotFound
	}
	return copyTemplate(found), nil
}

func (r *templateRepository) List(_ context.Context, phase lifecycle.Phase) ([]*template.MessageTemplate, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	result := make([]*template.MessageTemplate, 0)
	for _, t := range r.s.data.templates {
		if phase == "" || t.Type == phase {
			result = append(result, copyTemplate(t))
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Type != result[j].Type {
			return result[i].Type < result[j].Type
		}
		return result[i].Name < result[j].Name
	})
	return result, nil
}

func (r *templateRepository) Update(_ context.Context, t *template.MessageTemplate) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.data.templates[t.ID]; !ok {
		return template.ErrTemplateNotFound
	}
	put(r.undo, r.s.data.templates, t.ID, copyTemplate(t))
	return nil
}

func (r *templateRepository) ClearDefault(_ context.Context, phase lifecycle.Phase, exceptID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, t := range r.s.data.templates {
		if t.Type == phase && t.IsDefault && id != exceptID {
			updated := copyTemplate(t)
			updated.IsDefault = false
			updated.UpdatedAt = time.Now()
			put(r.undo, r.s.data.templates, id, updated)
		}
	}
	return nil
}

type activityRepository struct {
	s    *Store
	undo *undoLog
}

func (r *activityRepository) Create(_ context.Context, l *activity.Log) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c := *l
	r.s.data.activities = append(r.s.data.activities, &c)
	r.undo.add(func() {
		r.s.data.activities = removeFirst(r.s.data.activities, func(a *activity.Log) bool { return a == &c })
	})
	return nil
}

func (r *activityRepository) FindByCustomer(_ context.Context, customerID string, limit, offset int) ([]*activity.Log, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	result := make([]*activity.Log, 0)
	for i := len(r.s.data.activities) - 1; i >= 0; i-- {
		if l := r.s.data.activities[i]; l.CustomerID == customerID {
			c := *l
			result = append(result, &c)
		}
	}
	return page(result, limit, offset), nil
}
