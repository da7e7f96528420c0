package postgres

import "github.com/shopspring/decimal"

// UserModel é o model GORM para usuários
type UserModel struct {
	ID        string `gorm:"type:uuid;primaryKey"`
	Name      string `gorm:"type:varchar(100);not null"`
	Email     string `gorm:"type:varchar(100);uniqueIndex;not null"`
	Password  string `gorm:"type:varchar(255);not null"`
	CPF       string `gorm:"column:cpf;type:varchar(11);uniqueIndex;not null"`
	BirthDate int64  `gorm:"not null"`
	Role      string `gorm:"type:varchar(20);not null;index"`
	IsActive  bool   `gorm:"not null;default:true;index"` // Soft delete
	CreatedAt int64  `gorm:"autoCreateTime"`
	UpdatedAt int64  `gorm:"autoUpdateTime"`
}

func (UserModel) TableName() string {
	return "users"
}

// InvestmentModel é o model GORM para o catálogo de investimentos
type InvestmentModel struct {
	ID                   string          `gorm:"type:uuid;primaryKey"`
	Name                 string          `gorm:"type:varchar(100);not null;index"`
	Type                 string          `gorm:"type:varchar(50);not null"`
	BaseValue            decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	ExpectedYieldPercent decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	RiskLevel            string          `gorm:"type:varchar(20);not null"`
	Description          string          `gorm:"type:varchar(500)"`
	IsActive             bool            `gorm:"not null;default:true;index"` // Soft delete
	CreatedAt            int64           `gorm:"autoCreateTime"`
	UpdatedAt            int64           `gorm:"autoUpdateTime"`
}

func (InvestmentModel) TableName() string {
	return "investments"
}

// UserInvestmentModel é o model GORM para aportes (usuário x investimento).
// As foreign keys garantem integridade referencial no banco; um insert
// órfão é rejeitado pela constraint mesmo se a checagem prévia de
// existência for invalidada por corrida.
type UserInvestmentModel struct {
	ID             string          `gorm:"type:uuid;primaryKey"`
	UserID         string          `gorm:"type:uuid;not null;index"`
	InvestmentID   string          `gorm:"type:uuid;not null;index"`
	AmountInvested decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Units          decimal.Decimal `gorm:"type:decimal(18,6);not null"`
	PurchaseDate   int64           `gorm:"not null;index"`
	CurrentValue   decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Status         string          `gorm:"type:varchar(20);not null;default:'Ativo'"`
	IsActive       bool            `gorm:"not null;default:true;index"` // Soft delete
	CreatedAt      int64           `gorm:"autoCreateTime"`
	UpdatedAt      int64           `gorm:"autoUpdateTime"`

	User       *UserModel       `gorm:"foreignKey:UserID"`
	Investment *InvestmentModel `gorm:"foreignKey:InvestmentID"`
}

func (UserInvestmentModel) TableName() string {
	return "user_investments"
}
