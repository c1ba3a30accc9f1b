package results

// Document is one search hit as delivered by the search backend. JSON and
// YAML names follow the backend's field names.
type Document struct {
	ID                 string `json:"id" yaml:"id"`
	Title              string `json:"titulo" yaml:"titulo"`
	DocumentType       string `json:"tipoDocumento" yaml:"tipoDocumento"`
	Process            string `json:"processo" yaml:"processo"`
	AttachedAt         string `json:"dataAnexacao" yaml:"dataAnexacao"`
	ProtocolAt         string `json:"dataProtocolo" yaml:"dataProtocolo"`
	JoinedAt           string `json:"dataJuntada" yaml:"dataJuntada"`
	OriginUnit         string `json:"unidadeOrigem" yaml:"unidadeOrigem"`
	OriginTeam         string `json:"equipeOrigem" yaml:"equipeOrigem"`
	ProcessGroup       string `json:"grupoProcesso" yaml:"grupoProcesso"`
	ProcessType        string `json:"tipoProcesso" yaml:"tipoProcesso"`
	ProcessSubtype     string `json:"subtipoProcesso" yaml:"subtipoProcesso"`
	TaxpayerID         string `json:"niContribuinte" yaml:"niContribuinte"`
	TaxpayerName       string `json:"nomeContribuinte" yaml:"nomeContribuinte"`
	CurrentTeam        string `json:"equipeAtual" yaml:"equipeAtual"`
	CurrentUnit        string `json:"unidadeAtual" yaml:"unidadeAtual"`
	ResponsibleCPF     string `json:"cpfResponsavel" yaml:"cpfResponsavel"`
	JoinedBy           string `json:"usuarioJuntada" yaml:"usuarioJuntada"`
	Tribute            string `json:"tributoAct" yaml:"tributoAct"`
	Subjects           string `json:"assuntosObjetos" yaml:"assuntosObjetos"`
	Allegations        string `json:"alegacoes" yaml:"alegacoes"`
	MainDocumentNumber string `json:"numeroDocPrincipal" yaml:"numeroDocPrincipal"`
	Content            string `json:"conteudo" yaml:"conteudo"`

	Indexed            bool `json:"arquivoIndexado" yaml:"arquivoIndexado"`
	Searchable         bool `json:"indicadorPesquisavel" yaml:"indicadorPesquisavel"`
	OriginalSearchable bool `json:"indicadorOriginalPesquisavel" yaml:"indicadorOriginalPesquisavel"`
}

// Value returns the display value of the card field with the given key, or ""
// for unknown keys.
func (d Document) Value(key string) string {
	switch key {
	case "processo":
		return d.Process
	case "data-anexacao":
		return d.AttachedAt
	case "data-protocolo":
		return d.ProtocolAt
	case "data-juntada":
		return d.JoinedAt
	case "unidade-origem":
		return d.OriginUnit
	case "equipe-origem":
		return d.OriginTeam
	case "tipo-documento":
		return d.DocumentType
	case "titulo":
		return d.Title
	case "grupo-processo":
		return d.ProcessGroup
	case "tipo-processo":
		return d.ProcessType
	case "subtipo-processo":
		return d.ProcessSubtype
	case "ni-contribuinte":
		return d.TaxpayerID
	case "nome-contribuinte":
		return d.TaxpayerName
	case "equipe-atual":
		return d.CurrentTeam
	case "unidade-atual":
		return d.CurrentUnit
	case "cpf-responsavel":
		return d.ResponsibleCPF
	case "usuario-juntada":
		return d.JoinedBy
	case "tributo-act":
		return d.Tribute
	case "assuntos-objetos":
		return d.Subjects
	case "alegacoes":
		return d.Allegations
	case "numero-doc-principal":
		return d.MainDocumentNumber
	}
	return ""
}

// FieldDef names a card field and its label.
type FieldDef struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// DefaultFields is the card body layout, in display order.
var DefaultFields = []FieldDef{
	{"processo", "Número do Processo"},
	{"data-anexacao", "Data Anexação"},
	{"data-protocolo", "Data Protocolo"},
	{"data-juntada", "Data Juntada"},
	{"unidade-origem", "Unidade Origem"},
	{"equipe-origem", "Equipe Origem"},
	{"tipo-documento", "Tipo Documento"},
	{"titulo", "Título"},
	{"grupo-processo", "Grupo Processo"},
	{"tipo-processo", "Tipo Processo"},
	{"subtipo-processo", "Subtipo Processo"},
	{"ni-contribuinte", "NI Contribuinte"},
	{"nome-contribuinte", "Nome Contribuinte"},
	{"equipe-atual", "Equipe Atual"},
	{"unidade-atual", "Unidade Atual"},
	{"cpf-responsavel", "CPF Responsável"},
	{"usuario-juntada", "Usuário Juntada"},
	{"tributo-act", "Tributo ACT"},
	{"assuntos-objetos", "Assuntos/Objetos"},
	{"alegacoes", "Alegações"},
	{"numero-doc-principal", "Nr Doc Principal"},
}

// DownloadType tells which PDF links a card offers.
type DownloadType string

const (
	DownloadDisabled   DownloadType = "disabled"
	DownloadDual       DownloadType = "dual"
	DownloadOriginal   DownloadType = "original"
	DownloadSearchable DownloadType = "searchable"
)

// Link is a download anchor on a card.
type Link struct {
	URL   string `json:"url"`
	Title string `json:"title"`
	OCR   bool   `json:"ocr"`
}

// CardField is a rendered field of a card body. HTML is already escaped and
// highlighted.
type CardField struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value string `json:"value"`
	HTML  string `json:"html"`
}

// Card is the render model of one result.
type Card struct {
	ID           string       `json:"id"`
	Anchor       string       `json:"anchor,omitempty"`
	TitleHTML    string       `json:"titleHtml"`
	DownloadType DownloadType `json:"downloadType"`
	Links        []Link       `json:"links"`
	Fields       []CardField  `json:"fields"`
	SnippetHTML  string       `json:"snippetHtml,omitempty"`
}
