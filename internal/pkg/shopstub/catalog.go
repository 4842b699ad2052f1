package shopstub

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

// PaymentMethods способы оплаты магазина, покрывают все корзины нормализации.
var PaymentMethods = []string{"cash", "paymob", "valu", "paymob.valu", "card", "wallet"}

// Order запись магазина в том виде, в котором ее отдает GetOrders.
type Order struct {
	OrderNumber    string
	CustomerName   string
	Address        string
	BillingCity    string
	MobileNumber   string
	TotalOrderFees decimal.Decimal
	PaymentMethod  string
	CreatedAt      time.Time
}

// Catalog потокобезопасный набор заказов, отсортированный по CreatedAt.
type Catalog struct {
	mu     sync.RWMutex
	faker  *gofakeit.Faker
	orders []Order
	seq    int
}

func NewCatalog(seed uint64) *Catalog {
	return &Catalog{
		faker: gofakeit.New(seed),
	}
}

// Generate добавляет n заказов с CreatedAt, равномерно разложенным на [start, end).
func (c *Catalog) Generate(n int, start, end time.Time) {
	if n <= 0 || !end.After(start) {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	step := end.Sub(start) / time.Duration(n)
	for i := range n {
		c.orders = append(c.orders, c.fakeOrder(start.Add(step*time.Duration(i))))
	}
	c.sort()
}

// Add добавляет готовый заказ; пустой номер заполняется из счетчика.
func (c *Catalog) Add(order Order) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if order.OrderNumber == "" {
		c.seq++
		order.OrderNumber = fmt.Sprintf("SHOP-%06d", c.seq)
	}
	c.orders = append(c.orders, order)
	c.sort()
}

// ListFrom заказы не раньше from по возрастанию CreatedAt, не больше limit. limit <= 0 без ограничения.
func (c *Catalog) ListFrom(ctx context.Context, from time.Time, limit int) ([]Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	idx := sort.Search(len(c.orders), func(i int) bool {
		return !c.orders[i].CreatedAt.Before(from)
	})

	tail := c.orders[idx:]
	if limit > 0 && len(tail) > limit {
		tail = tail[:limit]
	}

	return append([]Order(nil), tail...), nil
}

func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.orders)
}

func (c *Catalog) fakeOrder(createdAt time.Time) Order {
	c.seq++
	return Order{
		OrderNumber:    fmt.Sprintf("SHOP-%06d", c.seq),
		CustomerName:   c.faker.Name(),
		Address:        c.faker.Street(),
		BillingCity:    c.faker.City(),
		MobileNumber:   c.faker.Phone(),
		TotalOrderFees: decimal.NewFromFloat(c.faker.Price(50, 5000)).Round(2),
		PaymentMethod:  c.faker.RandomString(PaymentMethods),
		CreatedAt:      createdAt.UTC(),
	}
}

func (c *Catalog) sort() {
	sort.SliceStable(c.orders, func(i, j int) bool {
		return c.orders[i].CreatedAt.Before(c.orders[j].CreatedAt)
	})
}
