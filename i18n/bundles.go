package i18n

// Copy is the full set of translated strings for one locale, grouped by
// content area. Lookups are plain field access on a typed record, so a
// missing key cannot exist at runtime; a missing locale falls back to the
// default bundle in Bundle.
type Copy struct {
	Nav     NavCopy
	Home    HomeCopy
	About   AboutCopy
	Blog    BlogCopy
	Cases   CasesCopy
	Contact ContactCopy
	Errors  ErrorsCopy
	Footer  FooterCopy
}

type NavCopy struct {
	Home    string
	About   string
	Blog    string
	Cases   string
	Contact string
}

type HomeCopy struct {
	HeroTitle    string
	HeroSubtitle string
	FeaturedHead string
	ReadMore     string
	CasesHead    string
	CasesLink    string
}

type AboutCopy struct {
	Title   string
	Mission string
	Values  string
}

type BlogCopy struct {
	Title         string
	AllCategories string
	ReadMore      string
	Empty         string
	EmptyBackLink string
	Previous      string
	Next          string
	PublishedOn   string
}

type CasesCopy struct {
	Title    string
	Sector   string
	Year     string
	ReadCase string
}

type ContactCopy struct {
	Title     string
	Name      string
	Email     string
	Phone     string
	Subject   string
	Message   string
	Company   string
	Send      string
	Sent      string
	Failed    string
	TooMany   string
	Required  string
}

type ErrorsCopy struct {
	NotFoundTitle string
	NotFoundBody  string
	ServerTitle   string
	ServerBody    string
	BackHome      string
}

type FooterCopy struct {
	Rights  string
	Tagline string
}

var bundles = map[Locale]Copy{
	PT: {
		Nav: NavCopy{Home: "Início", About: "Sobre", Blog: "Blog", Cases: "Cases", Contact: "Contato"},
		Home: HomeCopy{
			HeroTitle:    "Tecnologia que move o seu negócio",
			HeroSubtitle: "A Nortela desenha e opera produtos digitais de ponta a ponta.",
			FeaturedHead: "Em destaque",
			ReadMore:     "Ler mais",
			CasesHead:    "Histórias de sucesso",
			CasesLink:    "Ver todos os cases",
		},
		About: AboutCopy{
			Title:   "Sobre a Nortela",
			Mission: "Construímos software sob medida com equipes enxutas e entrega contínua.",
			Values:  "Transparência, autonomia e obsessão pelo resultado do cliente.",
		},
		Blog: BlogCopy{
			Title:         "Blog",
			AllCategories: "Todas",
			ReadMore:      "Ler artigo",
			Empty:         "Nenhum artigo encontrado.",
			EmptyBackLink: "Ver todos os artigos",
			Previous:      "Anterior",
			Next:          "Próxima",
			PublishedOn:   "Publicado em",
		},
		Cases: CasesCopy{Title: "Cases", Sector: "Setor", Year: "Ano", ReadCase: "Ler o case"},
		Contact: ContactCopy{
			Title:    "Fale conosco",
			Name:     "Nome",
			Email:    "E-mail",
			Phone:    "Telefone",
			Subject:  "Assunto",
			Message:  "Mensagem",
			Company:  "Empresa (opcional)",
			Send:     "Enviar",
			Sent:     "Mensagem enviada. Retornaremos em breve.",
			Failed:   "Não foi possível enviar agora. Tente novamente.",
			TooMany:  "Muitas tentativas. Aguarde um instante.",
			Required: "Preencha nome, e-mail e mensagem.",
		},
		Errors: ErrorsCopy{
			NotFoundTitle: "Página não encontrada",
			NotFoundBody:  "O endereço que você procura não existe ou foi movido.",
			ServerTitle:   "Algo deu errado",
			ServerBody:    "Tivemos um problema ao processar sua solicitação.",
			BackHome:      "Voltar ao início",
		},
		Footer: FooterCopy{Rights: "Todos os direitos reservados.", Tagline: "Produtos digitais de ponta a ponta."},
	},
	EN: {
		Nav: NavCopy{Home: "Home", About: "About", Blog: "Blog", Cases: "Case studies", Contact: "Contact"},
		Home: HomeCopy{
			HeroTitle:    "Technology that moves your business",
			HeroSubtitle: "Nortela designs and runs digital products end to end.",
			FeaturedHead: "Featured",
			ReadMore:     "Read more",
			CasesHead:    "Success stories",
			CasesLink:    "See all case studies",
		},
		About: AboutCopy{
			Title:   "About Nortela",
			Mission: "We build tailored software with lean teams and continuous delivery.",
			Values:  "Transparency, autonomy and obsession with client outcomes.",
		},
		Blog: BlogCopy{
			Title:         "Blog",
			AllCategories: "All",
			ReadMore:      "Read article",
			Empty:         "No articles found.",
			EmptyBackLink: "See all articles",
			Previous:      "Previous",
			Next:          "Next",
			PublishedOn:   "Published on",
		},
		Cases: CasesCopy{Title: "Case studies", Sector: "Sector", Year: "Year", ReadCase: "Read the case"},
		Contact: ContactCopy{
			Title:    "Get in touch",
			Name:     "Name",
			Email:    "Email",
			Phone:    "Phone",
			Subject:  "Subject",
			Message:  "Message",
			Company:  "Company (optional)",
			Send:     "Send",
			Sent:     "Message sent. We will get back to you soon.",
			Failed:   "We could not send your message right now. Please try again.",
			TooMany:  "Too many attempts. Please wait a moment.",
			Required: "Name, email and message are required.",
		},
		Errors: ErrorsCopy{
			NotFoundTitle: "Page not found",
			NotFoundBody:  "The address you are looking for does not exist or has moved.",
			ServerTitle:   "Something went wrong",
			ServerBody:    "We hit a problem while handling your request.",
			BackHome:      "Back to home",
		},
		Footer: FooterCopy{Rights: "All rights reserved.", Tagline: "Digital products, end to end."},
	},
	ES: {
		Nav: NavCopy{Home: "Inicio", About: "Nosotros", Blog: "Blog", Cases: "Casos", Contact: "Contacto"},
		Home: HomeCopy{
			HeroTitle:    "Tecnología que mueve tu negocio",
			HeroSubtitle: "Nortela diseña y opera productos digitales de punta a punta.",
			FeaturedHead: "Destacados",
			ReadMore:     "Leer más",
			CasesHead:    "Historias de éxito",
			CasesLink:    "Ver todos los casos",
		},
		About: AboutCopy{
			Title:   "Sobre Nortela",
			Mission: "Construimos software a medida con equipos ágiles y entrega continua.",
			Values:  "Transparencia, autonomía y obsesión por el resultado del cliente.",
		},
		Blog: BlogCopy{
			Title:         "Blog",
			AllCategories: "Todas",
			ReadMore:      "Leer artículo",
			Empty:         "No se encontraron artículos.",
			EmptyBackLink: "Ver todos los artículos",
			Previous:      "Anterior",
			Next:          "Siguiente",
			PublishedOn:   "Publicado el",
		},
		Cases: CasesCopy{Title: "Casos", Sector: "Sector", Year: "Año", ReadCase: "Leer el caso"},
		Contact: ContactCopy{
			Title:    "Hablemos",
			Name:     "Nombre",
			Email:    "Correo",
			Phone:    "Teléfono",
			Subject:  "Asunto",
			Message:  "Mensaje",
			Company:  "Empresa (opcional)",
			Send:     "Enviar",
			Sent:     "Mensaje enviado. Te responderemos pronto.",
			Failed:   "No pudimos enviar tu mensaje ahora. Inténtalo de nuevo.",
			TooMany:  "Demasiados intentos. Espera un momento.",
			Required: "Nombre, correo y mensaje son obligatorios.",
		},
		Errors: ErrorsCopy{
			NotFoundTitle: "Página no encontrada",
			NotFoundBody:  "La dirección que buscas no existe o fue movida.",
			ServerTitle:   "Algo salió mal",
			ServerBody:    "Tuvimos un problema al procesar tu solicitud.",
			BackHome:      "Volver al inicio",
		},
		Footer: FooterCopy{Rights: "Todos los derechos reservados.", Tagline: "Productos digitales de punta a punta."},
	},
}

// Bundle returns the copy set for a locale, falling back to the default
// bundle when the locale has no translation. It never fails.
func Bundle(loc Locale) Copy {
	if b, ok := bundles[loc]; ok {
		return b
	}
	return bundles[Default]
}
