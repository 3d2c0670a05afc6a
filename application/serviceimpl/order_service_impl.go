package serviceimpl

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"shop-backend/domain/dto"
	"shop-backend/domain/models"
	"shop-backend/domain/repositories"
	"shop-backend/domain/services"
	"shop-backend/infrastructure/messaging"
	"shop-backend/pkg/apperrors"
	"shop-backend/pkg/logger"
)

type OrderServiceImpl struct {
	orderRepo    repositories.OrderRepository
	customerRepo repositories.CustomerRepository
	productRepo  repositories.ProductRepository
	promoService services.PromotionService
	events       *messaging.EventPublisher
}

func NewOrderService(
	orderRepo repositories.OrderRepository,
	customerRepo repositories.CustomerRepository,
	productRepo repositories.ProductRepository,
	promoService services.PromotionService,
	events *messaging.EventPublisher,
) services.OrderService {
	return &OrderServiceImpl{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		promoService: promoService,
		events:       events,
	}
}

func (s *OrderServiceImpl) Create(ctx context.Context, req *dto.CreateOrderRequest) (*models.Order, error) {
	customer, err := s.resolveCustomer(ctx, req)
	if err != nil {
		return nil, err
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	var total int64
	for _, reqItem := range req.Items {
		product, err := s.productRepo.GetByID(ctx, reqItem.ProductID)
		if err != nil {
			return nil, apperrors.NewReference("order", "product not found: "+reqItem.ProductID.String())
		}
		if !product.IsActive {
			return nil, apperrors.NewConflict("order", "product is not available: "+product.Name)
		}
		productID := product.ID
		items = append(items, models.OrderItem{
			ID:        uuid.New(),
			ProductID: &productID,
			// snapshot name and price; later product edits must not rewrite
			// order history
			Name:     product.Name,
			Price:    product.Price,
			Quantity: reqItem.Quantity,
		})
		total += product.Price * int64(reqItem.Quantity)
	}

	var promo *models.Promotion
	if req.PromoCode != "" {
		// price with the validated promo now, redeem after the order persists;
		// a failed insert must not burn a usage slot
		promo, err = s.promoService.Validate(ctx, req.PromoCode)
		if err != nil {
			return nil, err
		}
		total = applyDiscount(total, promo)
	}

	number, err := s.nextOrderNumber(ctx)
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		ID:         uuid.New(),
		Number:     number,
		CustomerID: customer.ID,
		Status:     models.OrderStatusNew,
		Total:      total,
		Comment:    req.Comment,
		PromoCode:  req.PromoCode,
		Items:      items,
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		logger.ErrorContext(ctx, "Failed to create order", "error", err)
		return nil, err
	}

	if promo != nil {
		if _, err := s.promoService.Redeem(ctx, req.PromoCode); err != nil {
			// the last usage slot went to a concurrent order between validate
			// and redeem; unwind ours instead of keeping an unearned discount
			if delErr := s.orderRepo.Delete(ctx, order.ID); delErr != nil {
				logger.ErrorContext(ctx, "Failed to unwind order after redeem failure",
					"order_id", order.ID, "error", delErr)
			}
			return nil, err
		}
	}
	order.Customer = customer

	s.events.Publish(ctx, messaging.SubjectOrderCreated, map[string]any{
		"orderId": order.ID,
		"number":  order.Number,
		"total":   order.Total,
	})
	logger.InfoContext(ctx, "Order created", "order_id", order.ID, "number", order.Number, "total", order.Total)
	return order, nil
}

func (s *OrderServiceImpl) resolveCustomer(ctx context.Context, req *dto.CreateOrderRequest) (*models.Customer, error) {
	if req.CustomerID != nil {
		customer, err := s.customerRepo.GetByID(ctx, *req.CustomerID)
		if err != nil {
			return nil, apperrors.NewReference("order", "customer not found: "+req.CustomerID.String())
		}
		return customer, nil
	}

	// repeat buyers are matched by phone
	if customer, err := s.customerRepo.GetByPhone(ctx, req.CustomerPhone); err == nil {
		return customer, nil
	}

	customer := &models.Customer{
		ID:    uuid.New(),
		Name:  req.CustomerName,
		Phone: req.CustomerPhone,
		Email: req.CustomerEmail,
	}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}
	logger.InfoContext(ctx, "Customer created", "customer_id", customer.ID)
	return customer, nil
}

func applyDiscount(total int64, promo *models.Promotion) int64 {
	switch promo.Kind {
	case models.PromotionKindPercent:
		total -= total * promo.Value / 100
	case models.PromotionKindFixed:
		total -= promo.Value
	}
	if total < 0 {
		total = 0
	}
	return total
}

// nextOrderNumber builds ORD-YYYYMMDD-xxxx from the day's order count. A race
// on the same second is caught by the unique index and surfaces as a conflict
// the caller may retry.
func (s *OrderServiceImpl) nextOrderNumber(ctx context.Context) (string, error) {
	now := time.Now().UTC()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	count, err := s.orderRepo.CountCreatedSince(ctx, midnight)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("ORD-%s-%04d", now.Format("20060102"), count+1), nil
}

func (s *OrderServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	return s.orderRepo.GetByID(ctx, id)
}

func (s *OrderServiceImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !models.CanTransition(order.Status, status) {
		logger.WarnContext(ctx, "Illegal order transition",
			"order_id", id, "from", order.Status, "to", status)
		return nil, apperrors.NewConflict("order",
			fmt.Sprintf("cannot change status %s -> %s", order.Status, status))
	}
	if err := s.orderRepo.UpdateStatus(ctx, id, status); err != nil {
		logger.ErrorContext(ctx, "Failed to update order status", "order_id", id, "error", err)
		return nil, err
	}
	order.Status = status

	s.events.Publish(ctx, messaging.SubjectOrderStatusChanged, map[string]any{
		"orderId": order.ID,
		"number":  order.Number,
		"status":  string(status),
	})
	logger.InfoContext(ctx, "Order status updated", "order_id", id, "status", status)
	return order, nil
}

func (s *OrderServiceImpl) List(ctx context.Context, query *dto.ListOrdersQuery) ([]*models.Order, int64, error) {
	query.Normalize()
	filter := repositories.OrderFilter{CustomerID: query.CustomerID}
	if query.Status != "" {
		status := models.OrderStatus(query.Status)
		filter.Status = &status
	}
	return s.orderRepo.List(ctx, filter, query.Page, query.Limit)
}

type CustomerServiceImpl struct {
	customerRepo repositories.CustomerRepository
}

func NewCustomerService(customerRepo repositories.CustomerRepository) services.CustomerService {
	return &CustomerServiceImpl{customerRepo: customerRepo}
}

func (s *CustomerServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	return s.customerRepo.GetByID(ctx, id)
}

func (s *CustomerServiceImpl) Update(ctx context.Context, id uuid.UUID, name, email, comment *string) (*models.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if name != nil {
		customer.Name = *name
	}
	if email != nil {
		customer.Email = *email
	}
	if comment != nil {
		customer.Comment = *comment
	}
	if err := s.customerRepo.Update(ctx, customer); err != nil {
		logger.ErrorContext(ctx, "Failed to update customer", "customer_id", id, "error", err)
		return nil, err
	}
	return customer, nil
}

func (s *CustomerServiceImpl) List(ctx context.Context, page, limit int) ([]*models.Customer, int64, error) {
	return s.customerRepo.List(ctx, page, limit)
}
