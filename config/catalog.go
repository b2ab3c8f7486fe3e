package config

// Static catalog data consumed by the validator and exposed read-only
// to the survey frontends. Branch and context lists are deployment
// configuration, not computed by the core.

type Branch struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CSATContext struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// CSATContextOther requires accompanying free text on submission.
const CSATContextOther = "other"

var Branches = []Branch{
	{ID: "balneario-camboriu", Name: "Balneário Camboriú"},
	{ID: "blumenau", Name: "Blumenau"},
	{ID: "brusque", Name: "Brusque"},
	{ID: "centro-distribuicao", Name: "Centro de Distribuição"},
	{ID: "gravatai", Name: "Gravataí - RS"},
	{ID: "itajai", Name: "Itajaí"},
	{ID: "itapema", Name: "Itapema"},
	{ID: "joinville", Name: "Joinville"},
	{ID: "lages", Name: "Lages"},
	{ID: "rio-do-sul", Name: "Rio do Sul"},
	{ID: "sao-jose", Name: "São José"},
	{ID: "tubarao", Name: "Tubarão"},
}

var CSATContexts = []CSATContext{
	{ID: "purchase", Label: "Compra"},
	{ID: "return", Label: "Devolução"},
	{ID: "support", Label: "Suporte/Assistência"},
	{ID: CSATContextOther, Label: "Outro"},
}

// Catalog bundles the static lists so the validator can be exercised
// against alternative fixtures in tests.
type Catalog struct {
	Branches     []Branch
	CSATContexts []CSATContext
}

func DefaultCatalog() Catalog {
	return Catalog{Branches: Branches, CSATContexts: CSATContexts}
}

func (c Catalog) KnownBranch(id string) bool {
	for _, b := range c.Branches {
		if b.ID == id {
			return true
		}
	}
	return false
}

func (c Catalog) KnownCSATContext(id string) bool {
	for _, ctx := range c.CSATContexts {
		if ctx.ID == id {
			return true
		}
	}
	return false
}
