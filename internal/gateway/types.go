package gateway

import (
	"time"

	"cakeshop/internal/domain/model"
	auth "cakeshop/internal/usecase/auth_usecase"
)

// GraphQLに返す形。DefaultResolveFnがjsonタグでフィールドを引く。
// お金はFloat、日時はRFC3339。

type userDTO struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	Name      string  `json:"name"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
	Role      string  `json:"role"`
	CreatedAt string  `json:"createdAt"`
}

type authPayloadDTO struct {
	Token     string  `json:"token"`
	User      userDTO `json:"user"`
	ExpiresAt string  `json:"expiresAt"`
}

type cakeDTO struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Weight      string  `json:"weight"`
	Flavor      string  `json:"flavor"`
	InStock     bool    `json:"inStock"`
	CreatedAt   string  `json:"createdAt"`
}

type cartItemDTO struct {
	ID        string   `json:"id"`
	UserID    string   `json:"userId"`
	CakeID    string   `json:"cakeId"`
	Quantity  int      `json:"quantity"`
	Cake      *cakeDTO `json:"cake"`
	CreatedAt string   `json:"createdAt"`
}

type orderItemDTO struct {
	ID       string   `json:"id"`
	OrderID  string   `json:"orderId"`
	CakeID   string   `json:"cakeId"`
	Quantity int      `json:"quantity"`
	Price    float64  `json:"price"`
	Cake     *cakeDTO `json:"cake"`
}

type orderDTO struct {
	ID              string         `json:"id"`
	UserID          string         `json:"userId"`
	Total           float64        `json:"total"`
	Status          string         `json:"status"`
	PaymentMethod   string         `json:"paymentMethod"`
	DeliveryAddress string         `json:"deliveryAddress"`
	Phone           string         `json:"phone"`
	CustomerName    string         `json:"customerName"`
	Items           []orderItemDTO `json:"items"`
	CreatedAt       string         `json:"createdAt"`
	UpdatedAt       string         `json:"updatedAt"`
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func toUserDTO(u model.User) userDTO {
	return userDTO{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Phone:     u.Phone,
		Address:   u.Address,
		Role:      string(u.Role),
		CreatedAt: formatTime(u.CreatedAt),
	}
}

func toAuthPayloadDTO(out auth.AuthOutput) authPayloadDTO {
	return authPayloadDTO{
		Token:     out.Token,
		User:      toUserDTO(out.User),
		ExpiresAt: formatTime(time.Unix(out.ExpiresAt, 0)),
	}
}

func toCakeDTO(c model.Cake) cakeDTO {
	return cakeDTO{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Price:       c.Price.InexactFloat64(),
		Image:       c.Image,
		Category:    c.Category,
		Weight:      c.Weight,
		Flavor:      c.Flavor,
		InStock:     c.InStock,
		CreatedAt:   formatTime(c.CreatedAt),
	}
}

func toCakeDTOPtr(c *model.Cake) *cakeDTO {
	if c == nil {
		return nil
	}
	dto := toCakeDTO(*c)
	return &dto
}

func toCakeDTOs(cakes []model.Cake) []cakeDTO {
	out := make([]cakeDTO, 0, len(cakes))
	for _, c := range cakes {
		out = append(out, toCakeDTO(c))
	}
	return out
}

func toCartItemDTO(it model.CartItem) cartItemDTO {
	return cartItemDTO{
		ID:        it.ID,
		UserID:    it.UserID,
		CakeID:    it.CakeID,
		Quantity:  it.Quantity,
		Cake:      toCakeDTOPtr(it.Cake),
		CreatedAt: formatTime(it.CreatedAt),
	}
}

func toCartItemDTOs(items []model.CartItem) []cartItemDTO {
	out := make([]cartItemDTO, 0, len(items))
	for _, it := range items {
		out = append(out, toCartItemDTO(it))
	}
	return out
}

func toOrderDTO(o model.Order) orderDTO {
	items := make([]orderItemDTO, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, orderItemDTO{
			ID:       it.ID,
			OrderID:  it.OrderID,
			CakeID:   it.CakeID,
			Quantity: it.Quantity,
			Price:    it.Price.InexactFloat64(),
			Cake:     toCakeDTOPtr(it.Cake),
		})
	}

	return orderDTO{
		ID:              o.ID,
		UserID:          o.UserID,
		Total:           o.Total.InexactFloat64(),
		Status:          string(o.Status),
		PaymentMethod:   o.PaymentMethod,
		DeliveryAddress: o.DeliveryAddress,
		Phone:           o.Phone,
		CustomerName:    o.CustomerName,
		Items:           items,
		CreatedAt:       formatTime(o.CreatedAt),
		UpdatedAt:       formatTime(o.UpdatedAt),
	}
}

func toOrderDTOs(orders []model.Order) []orderDTO {
	out := make([]orderDTO, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderDTO(o))
	}
	return out
}
