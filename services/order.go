package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/sherryhehe/fashion-api/models"
)

// Pricing holds the checkout rates. Shipping is a flat fee, waived entirely
// once the subtotal exceeds FreeShippingThreshold (a threshold of 0 disables
// the waiver; free-shipping deployments set the fee itself to 0).
type Pricing struct {
	TaxRate               float64
	ShippingFee           float64
	FreeShippingThreshold float64
}

// OrderService converts carts into immutable order snapshots and drives the
// order status lifecycle.
type OrderService struct {
	carts    CartStore
	products ProductStore
	orders   OrderStore
	pricing  Pricing
}

func NewOrderService(carts CartStore, products ProductStore, orders OrderStore, pricing Pricing) *OrderService {
	return &OrderService{carts: carts, products: products, orders: orders, pricing: pricing}
}

type CheckoutInput struct {
	UserID          string
	ShippingAddress *models.Address
	PaymentMethod   string
	Notes           string
}

// CartQuote is the priced view of a cart. Checkout builds the order from the
// same quote the storefront displays, so the totals match bit for bit.
type CartQuote struct {
	Items        []models.OrderItem `json:"items"`
	Subtotal     float64            `json:"subtotal"`
	Tax          float64            `json:"tax"`
	ShippingCost float64            `json:"shipping_cost"`
	Total        float64            `json:"total"`
}

// Quote re-fetches every cart item's product and prices the cart at current
// product prices. Any vanished product fails the whole quote.
func (s *OrderService) Quote(ctx context.Context, userID string) (*CartQuote, error) {
	items, err := s.carts.ItemsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetch cart: %w", err)
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	quote := &CartQuote{Items: make([]models.OrderItem, 0, len(items))}
	for _, item := range items {
		product, err := s.products.FindByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return nil, NotFound("product " + item.ProductID.Hex() + " no longer exists")
			}
			return nil, err
		}

		image := ""
		if len(product.Images) > 0 {
			image = product.Images[0]
		}
		lineTotal := product.Price * float64(item.Quantity)
		quote.Items = append(quote.Items, models.OrderItem{
			ProductID:    product.ID,
			ProductName:  product.Name,
			ProductImage: image,
			Price:        product.Price,
			Quantity:     item.Quantity,
			Size:         item.Size,
			Color:        item.Color,
			LineTotal:    lineTotal,
		})
		quote.Subtotal += lineTotal
	}

	quote.Tax = quote.Subtotal * s.pricing.TaxRate
	quote.ShippingCost = s.pricing.ShippingFee
	if s.pricing.FreeShippingThreshold > 0 && quote.Subtotal > s.pricing.FreeShippingThreshold {
		quote.ShippingCost = 0
	}
	quote.Total = quote.Subtotal + quote.Tax + quote.ShippingCost
	return quote, nil
}

// Checkout validates the user's cart against live product data, freezes it
// into an order and clears the cart. Validation is all-or-nothing: nothing is
// written until every referenced product has been re-fetched. Once the order
// write succeeds, clearing the cart is best-effort cleanup — a leftover cart
// is a recoverable inconsistency, not a correctness violation.
func (s *OrderService) Checkout(ctx context.Context, in CheckoutInput) (*models.Order, error) {
	if in.UserID == "" {
		return nil, Invalid("user id is required")
	}
	if in.ShippingAddress == nil {
		return nil, Invalid("shipping address is required")
	}

	quote, err := s.Quote(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	number, err := s.nextOrderNumber(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	order := &models.Order{
		OrderNumber:     number,
		UserID:          in.UserID,
		Items:           quote.Items,
		Subtotal:        quote.Subtotal,
		Tax:             quote.Tax,
		ShippingCost:    quote.ShippingCost,
		Total:           quote.Total,
		Status:          models.OrderStatusPending,
		PaymentStatus:   paymentStatusFor(in.PaymentMethod),
		PaymentMethod:   in.PaymentMethod,
		ShippingAddress: *in.ShippingAddress,
		Notes:           in.Notes,
		Timeline: []models.TimelineEntry{{
			Status:      models.OrderStatusPending,
			Date:        now,
			Description: "Order placed",
		}},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.orders.Insert(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	if err := s.carts.ClearUser(ctx, in.UserID); err != nil {
		log.Printf("⚠️ orders: clearing cart for user %s after order %s failed: %v", in.UserID, order.OrderNumber, err)
	}
	return order, nil
}

// Cash on delivery stays pending until the courier settles; anything else is
// recorded as paid by the time the storefront reaches checkout. The enum is
// storage only — no gateway is involved here.
func paymentStatusFor(method string) models.PaymentStatus {
	switch method {
	case "", "cod":
		return models.PaymentStatusPending
	default:
		return models.PaymentStatusPaid
	}
}

// nextOrderNumber derives a unique order number from the running order count
// plus a timestamp and uuid fragment, so concurrent checkouts never collide.
func (s *OrderService) nextOrderNumber(ctx context.Context) (string, error) {
	count, err := s.orders.Count(ctx)
	if err != nil {
		return "", fmt.Errorf("count orders: %w", err)
	}
	return fmt.Sprintf("ORD-%d-%04d-%s", time.Now().UnixMilli(), count+1, uuid.NewString()[:8]), nil
}

// Transition moves an order to newStatus if the status machine allows it and
// appends exactly one timeline entry. The timeline is never truncated or
// reordered.
func (s *OrderService) Transition(ctx context.Context, orderID string, newStatus models.OrderStatus) (*models.Order, error) {
	if _, err := ParseOrderStatus(string(newStatus)); err != nil {
		return nil, InvalidTransition("unknown order status: " + string(newStatus))
	}

	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, NotFound("order not found")
		}
		return nil, err
	}

	if !CanTransition(order.Status, newStatus) {
		return nil, InvalidTransition(fmt.Sprintf("cannot move order from %s to %s", order.Status, newStatus))
	}

	now := time.Now()
	order.Status = newStatus
	order.Timeline = append(order.Timeline, models.TimelineEntry{
		Status:      newStatus,
		Date:        now,
		Description: "Order " + string(newStatus),
	})
	order.UpdatedAt = now
	if err := s.orders.Update(ctx, order); err != nil {
		return nil, fmt.Errorf("update order: %w", err)
	}

	if newStatus == models.OrderStatusDelivered {
		s.recordSales(ctx, order)
	}
	return order, nil
}

// Cancel is the user-facing cancellation. A delivered order can never be
// cancelled; that is a visible error, not a silent no-op.
func (s *OrderService) Cancel(ctx context.Context, orderID, userID string) (*models.Order, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, NotFound("order not found")
		}
		return nil, err
	}
	if userID != "" && order.UserID != userID {
		return nil, NotFound("order not found")
	}
	if order.Status == models.OrderStatusDelivered {
		return nil, Invalid("delivered orders cannot be cancelled")
	}
	return s.Transition(ctx, orderID, models.OrderStatusCancelled)
}

// SetPaymentStatus updates the stored payment enum.
func (s *OrderService) SetPaymentStatus(ctx context.Context, orderID string, status models.PaymentStatus) (*models.Order, error) {
	if _, err := ParsePaymentStatus(string(status)); err != nil {
		return nil, Invalid("unknown payment status: " + string(status))
	}
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, NotFound("order not found")
		}
		return nil, err
	}
	order.PaymentStatus = status
	order.UpdatedAt = time.Now()
	if err := s.orders.Update(ctx, order); err != nil {
		return nil, fmt.Errorf("update order: %w", err)
	}
	return order, nil
}

// Sales counters are advisory display data, like the catalog counts: a failed
// increment is logged and left for the next delivery to correct.
func (s *OrderService) recordSales(ctx context.Context, order *models.Order) {
	for _, item := range order.Items {
		if err := s.products.IncrementSales(ctx, item.ProductID, item.Quantity); err != nil {
			log.Printf("⚠️ orders: sales count for product %s failed: %v", item.ProductID.Hex(), err)
		}
	}
}
