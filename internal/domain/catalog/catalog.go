package catalog

import "time"

// Entidades de cadastro da tela de configurações: lojas, categorias,
// centros de custo, tipos de despesa e usuários.

type Store struct {
	ID        int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"nome" gorm:"column:nome;not null;uniqueIndex"`
	Address   string    `json:"endereco" gorm:"column:endereco"`
	Phone     string    `json:"telefone" gorm:"column:telefone"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Store) TableName() string { return "stores" }

type Category struct {
	ID          int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string    `json:"nome" gorm:"column:nome;not null;uniqueIndex"`
	Description string    `json:"descricao" gorm:"column:descricao"`
	Color       string    `json:"cor" gorm:"column:cor"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Category) TableName() string { return "categories" }

type CostCenter struct {
	ID          int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string    `json:"nome" gorm:"column:nome;not null;uniqueIndex"`
	Description string    `json:"descricao" gorm:"column:descricao"`
	Code        string    `json:"codigo" gorm:"column:codigo;uniqueIndex"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (CostCenter) TableName() string { return "cost_centers" }

type ExpenseType struct {
	ID          int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string    `json:"nome" gorm:"column:nome;not null;uniqueIndex"`
	Description string    `json:"descricao" gorm:"column:descricao"`
	Recurring   bool      `json:"recorrente" gorm:"column:recorrente;default:false"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (ExpenseType) TableName() string { return "expense_types" }

type Member struct {
	ID        int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"nome" gorm:"column:nome;not null"`
	Email     string    `json:"email" gorm:"not null;uniqueIndex"`
	Role      string    `json:"cargo" gorm:"column:cargo"`
	Active    bool      `json:"ativo" gorm:"column:ativo;default:true"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Member) TableName() string { return "members" }

func SeedStores() []Store {
	return []Store{
		{Name: "Loja Centro", Address: "Rua Principal, 123", Phone: "(11) 3333-4444", Email: "centro@iclub.com"},
		{Name: "Loja Shopping", Address: "Shopping Center, Loja 45", Phone: "(11) 5555-6666", Email: "shopping@iclub.com"},
		{Name: "Loja Online", Address: "Virtual", Phone: "(11) 7777-8888", Email: "online@iclub.com"},
		{Name: "Matriz", Address: "Av. Central, 1000", Phone: "(11) 2222-1111", Email: "matriz@iclub.com"},
	}
}

func SeedCategories() []Category {
	return []Category{
		{Name: "Aluguel", Description: "Aluguel de imóveis e espaços", Color: "#22C55E"},
		{Name: "Fornecedores", Description: "Pagamentos a fornecedores e parceiros", Color: "#3B82F6"},
		{Name: "Utilities", Description: "Água, luz, internet e telecomunicações", Color: "#F59E0B"},
		{Name: "Marketing", Description: "Campanhas, publicidade e promoção", Color: "#EF4444"},
		{Name: "Pessoal", Description: "Salários, benefícios e treinamentos", Color: "#8B5CF6"},
	}
}

func SeedCostCenters() []CostCenter {
	return []CostCenter{
		{Name: "Administrativo", Description: "Despesas administrativas gerais", Code: "ADM"},
		{Name: "Vendas", Description: "Despesas relacionadas a vendas", Code: "VEND"},
		{Name: "Marketing", Description: "Despesas de marketing e publicidade", Code: "MKT"},
		{Name: "Operacional", Description: "Despesas operacionais das lojas", Code: "OPE"},
		{Name: "TI", Description: "Tecnologia da informação", Code: "TI"},
	}
}

func SeedExpenseTypes() []ExpenseType {
	return []ExpenseType{
		{Name: "Fixo", Description: "Despesas fixas mensais", Recurring: true},
		{Name: "Variável", Description: "Despesas variáveis conforme necessidade"},
		{Name: "Eventual", Description: "Despesas eventuais ou sazonais"},
		{Name: "Investimento", Description: "Investimentos e melhorias"},
	}
}

func SeedMembers() []Member {
	return []Member{
		{Name: "Admin Sistema", Email: "admin@iclub.com", Role: "Administrador", Active: true},
		{Name: "João Silva", Email: "joao@iclub.com", Role: "Gerente Financeiro", Active: true},
		{Name: "Maria Santos", Email: "maria@iclub.com", Role: "Analista Financeiro", Active: true},
		{Name: "Carlos Lima", Email: "carlos@iclub.com", Role: "Contador", Active: false},
	}
}
