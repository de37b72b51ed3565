package domain

type SupplierKind int

const (
	SupplierKindIndividual SupplierKind = 1
	SupplierKindCompany    SupplierKind = 2
)

func (k SupplierKind) IsValid() bool {
	return k == SupplierKindIndividual || k == SupplierKindCompany
}

func (k SupplierKind) String() string {
	switch k {
	case SupplierKindIndividual:
		return "Pessoa Física"
	case SupplierKindCompany:
		return "Pessoa Jurídica"
	default:
		return ""
	}
}

type Supplier struct {
	ID       ID
	Name     string
	Document string
	Kind     SupplierKind
	Active   bool
}

func NewSupplier(name, document string, kind SupplierKind) *Supplier {
	return &Supplier{
		Name:     name,
		Document: document,
		Kind:     kind,
		Active:   true,
	}
}
