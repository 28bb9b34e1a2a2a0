package contracts

import "github.com/iclubstoree/iclub-financeiro/internal/domain/catalog"

type StoreRequest struct {
	Name    string `json:"nome" binding:"required"`
	Address string `json:"endereco"`
	Phone   string `json:"telefone"`
	Email   string `json:"email"`
}

func (r *StoreRequest) ToDomain() *catalog.Store {
	return &catalog.Store{Name: r.Name, Address: r.Address, Phone: r.Phone, Email: r.Email}
}

type CategoryRequest struct {
	Name        string `json:"nome" binding:"required"`
	Description string `json:"descricao"`
	Color       string `json:"cor"`
}

func (r *CategoryRequest) ToDomain() *catalog.Category {
	return &catalog.Category{Name: r.Name, Description: r.Description, Color: r.Color}
}

type CostCenterRequest struct {
	Name        string `json:"nome" binding:"required"`
	Description string `json:"descricao"`
	Code        string `json:"codigo"`
}

func (r *CostCenterRequest) ToDomain() *catalog.CostCenter {
	return &catalog.CostCenter{Name: r.Name, Description: r.Description, Code: r.Code}
}

type ExpenseTypeRequest struct {
	Name        string `json:"nome" binding:"required"`
	Description string `json:"descricao"`
	Recurring   bool   `json:"recorrente"`
}

func (r *ExpenseTypeRequest) ToDomain() *catalog.ExpenseType {
	return &catalog.ExpenseType{Name: r.Name, Description: r.Description, Recurring: r.Recurring}
}

type MemberRequest struct {
	Name   string `json:"nome" binding:"required"`
	Email  string `json:"email" binding:"required,email"`
	Role   string `json:"cargo"`
	Active bool   `json:"ativo"`
}

func (r *MemberRequest) ToDomain() *catalog.Member {
	return &catalog.Member{Name: r.Name, Email: r.Email, Role: r.Role, Active: r.Active}
}
