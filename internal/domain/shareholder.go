package domain

import "time"

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderAll    Gender = "ALL"
)

type ShareHolder struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Country   string    `json:"country"`
	Region    string    `json:"region"`
	Age       int       `json:"age"`
	Gender    Gender    `json:"gender"`
	Income    float64   `json:"income"`
	Deleted   bool      `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	Shares    []Share   `json:"shares,omitempty"`
}

// Share representa uma unidade de participação: cada linha conta como uma
// ação, não existe campo de quantidade.
type Share struct {
	ID            string    `json:"id"`
	ShareHolderID string    `json:"shareHolderId"`
	BrokerID      string    `json:"brokerId"`
	CompanyID     string    `json:"companyId"`
	Price         float64   `json:"price"`
	BrokerName    string    `json:"brokerName,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

type Broker struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// AgeGroup identifica uma faixa etária de acionistas
type AgeGroup string

const (
	AgeGroupAll    AgeGroup = "all"
	AgeGroup18To24 AgeGroup = "18-24"
	AgeGroup25To34 AgeGroup = "25-34"
	AgeGroup35To44 AgeGroup = "35-44"
	AgeGroup45To54 AgeGroup = "45-54"
	AgeGroup55To65 AgeGroup = "55-65"
	AgeGroup65Plus AgeGroup = "65+"
)

type ageRange struct {
	group AgeGroup
	min   int
	max   int
}

// Faixas inclusivas e sem sobreposição: tudo a partir de 65 cai em 65+.
// Menores de 18 não pertencem a faixa alguma.
var ageRanges = []ageRange{
	{AgeGroup18To24, 18, 24},
	{AgeGroup25To34, 25, 34},
	{AgeGroup35To44, 35, 44},
	{AgeGroup45To54, 45, 54},
	{AgeGroup55To65, 55, 64},
	{AgeGroup65Plus, 65, 120},
}

// AgeGroupFor resolve a faixa etária de uma idade; ok é falso quando a idade
// está fora de todas as faixas
func AgeGroupFor(age int) (AgeGroup, bool) {
	for _, r := range ageRanges {
		if age >= r.min && age <= r.max {
			return r.group, true
		}
	}
	return "", false
}

// AgeGroups lista as faixas etárias na ordem de exibição, sem o filtro "all"
func AgeGroups() []AgeGroup {
	groups := make([]AgeGroup, 0, len(ageRanges))
	for _, r := range ageRanges {
		groups = append(groups, r.group)
	}
	return groups
}

// ValidAgeGroup informa se o valor corresponde a um filtro de faixa etária
func ValidAgeGroup(value string) bool {
	if AgeGroup(value) == AgeGroupAll {
		return true
	}
	for _, r := range ageRanges {
		if AgeGroup(value) == r.group {
			return true
		}
	}
	return false
}

// ConcentrationLevel classifica o volume de ações intermediado
type ConcentrationLevel string

const (
	ConcentrationHigh   ConcentrationLevel = "1M+"
	ConcentrationMedium ConcentrationLevel = "500K - 900K"
	ConcentrationLow    ConcentrationLevel = "<500K"
)

// ConcentrationLevelFor classifica um total de ações nos níveis de exibição
func ConcentrationLevelFor(totalShares int) ConcentrationLevel {
	switch {
	case totalShares >= 1_000_000:
		return ConcentrationHigh
	case totalShares >= 500_000:
		return ConcentrationMedium
	}
	return ConcentrationLow
}
