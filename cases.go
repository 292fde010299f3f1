package website

import "github.com/nortela/website/views"

// caseStudies is the locally-authored success story catalog, newest first.
// Bodies use the markdown dialect rendered by the markdown package.
var caseStudies = []views.CaseStudy{
	{
		Slug:    "plataforma-logistica-andar",
		Client:  "Andar Transportes",
		Sector:  "Logística",
		Year:    "2025",
		Title:   "Plataforma de rastreamento em tempo real para a Andar",
		Excerpt: "Como levamos a frota da Andar de planilhas a uma plataforma de rastreamento em tempo real em seis meses.",
		Body: `## O desafio

A Andar operava 400 veículos com planilhas e ligações. Cada atraso virava
uma cadeia de telefonemas; nenhum cliente sabia onde estava sua carga.

## O que construímos

- Ingestão de telemetria de três fornecedores de rastreador
- Painel operacional com mapa ao vivo e alertas de desvio de rota
- Portal do cliente com previsão de chegada por pedido

> "Pela primeira vez o cliente sabe da entrega antes de nos ligar."

## Resultados

1. Redução de 70% nas ligações de suporte
2. Previsão de chegada com erro médio abaixo de 12 minutos
3. Integração concluída sem parada da operação`,
	},
	{
		Slug:    "checkout-verde-mar",
		Client:  "Verde Mar Alimentos",
		Sector:  "Varejo",
		Year:    "2024",
		Title:   "Checkout unificado para o e-commerce da Verde Mar",
		Excerpt: "Um checkout único para loja, app e televendas, com reaproveitamento total do catálogo existente.",
		Body: `## O desafio

Três canais de venda, três checkouts diferentes, três cestas de preço.
Promoções precisavam ser cadastradas em triplicata e divergiam com
frequência.

## O que construímos

- Serviço de carrinho e precificação único consumido pelos três canais
- Motor de promoções declarativo, versionado junto com o catálogo
- Telemetria de funil ponta a ponta

## Resultados

1. Tempo de cadastro de promoção caiu de dias para minutos
2. Divergência de preço entre canais zerada
3. Conversão do televendas subiu 18%`,
	},
	{
		Slug:    "portal-med-atlantica",
		Client:  "Atlântica Saúde",
		Sector:  "Saúde",
		Year:    "2024",
		Title:   "Portal de agendamento da Atlântica Saúde",
		Excerpt: "Agendamento online integrado a cinco sistemas hospitalares legados, sem substituir nenhum deles.",
		Body: `## O desafio

Cinco hospitais, cinco sistemas de agenda, nenhuma visão unificada. O
paciente ligava para cada unidade até achar um horário.

## O que construímos

- Camada de integração com os cinco sistemas legados
- Busca unificada de horários por especialidade e unidade
- Confirmação e lembrete por e-mail

## Resultados

1. 60% dos agendamentos migrados para o portal em um ano
2. Taxa de não comparecimento caiu 25% com os lembretes
3. Nenhum sistema legado precisou ser substituído`,
	},
}

// caseBySlug looks a case study up by slug.
func caseBySlug(slug string) (views.CaseStudy, bool) {
	for _, cs := range caseStudies {
		if cs.Slug == slug {
			return cs, true
		}
	}
	return views.CaseStudy{}, false
}
