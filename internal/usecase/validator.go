package usecase

// 入力チェックの約束（実装は internal/validator）
type AuthValidator interface {
	ValidateRegister(email string, password string, name string) error
	ValidateLogin(email string, password string) error
}

type OrderValidator interface {
	ValidateCreateOrder(in CreateOrderInput) error
}
