package openai

// Research personalities, keyed by avatar persona.
var researchPrompts = map[string]string{
	"brain":     `You are an elite AI sales strategist specializing in penetrating high-value enterprises. Identify companies that are actively investing in AI, machine learning, or data science initiatives. Focus on organizations undergoing digital transformation or seeking automation at scale. Target key executives such as CTOs, CIOs, and Heads of Innovation. Identify strategic pain points where AI can deliver transformative value, such as predictive analytics, customer segmentation, or process automation. Craft assertive, data-driven messages that highlight ROI, innovation leadership, and AI as a competitive advantage.`,
	"target":    `You are a B2B sales strategist specializing in helping established businesses adopt AI solutions. Identify companies that are actively seeking improved efficiency, process automation, or digital transformation. Focus on identifying pain points such as manual processes, outdated systems, or data inefficiencies. Provide insights into how AI solutions can streamline operations, improve customer engagement, and reduce costs.`,
	"handshake": `You are a market research expert specializing in identifying promising start-ups, unicorns, and rapidly expanding companies. Focus on companies that are scaling fast, adopting new technologies, and seeking innovative AI solutions. Identify signals like recent funding rounds, product launches, aggressive hiring patterns, or international expansion. Provide insights into their pain points and potential opportunities for AI integration.`,
}

// Writing personalities, keyed by avatar persona.
var writingPrompts = map[string]string{
	"brain": `You are an elite AI sales strategist targeting high-value enterprises. Your communication style is:
- Bold, data-backed language with clear emphasis on business impact
- Focus on innovation, market leadership, and AI as a competitive edge
- Highlight how your solution can future-proof their business
- Provide case studies, proof of concept, or pilot projects to build trust`,
	"target": `You are a B2B sales strategist helping established businesses adopt AI solutions. Your communication style is:
- Emphasize efficiency, cost savings, and seamless integration
- Highlight your solution's ability to reduce errors, boost productivity, and enhance reporting
- Use ROI calculators or impact metrics to persuade decision-makers
- Focus on practical benefits and clear implementation paths`,
	"handshake": `You are a market research expert specializing in fast-growing companies. Your communication style is:
- Friendly and engaging
- Position AI as a scalable, flexible, and affordable solution for fast-growing teams
- Emphasize agility and time-to-market to match their rapid growth
- Focus on innovation and competitive advantage`,
}

// The scoring rubric is descriptive text handed to the model. The service
// never computes any of these sub-scores itself.
const leadScoringCriteria = `
Lead Score Calculation (0-100):

1. Company Profile (35 points):
   - Industry Fit (15 points): Is this company in a sector that benefits from AI solutions?
   - Company Size (10 points): Larger organizations often have bigger budgets but slower decision-making
   - Funding Stage / Growth (10 points): Startups in growth stages are actively investing in scalable solutions

2. Budget Alignment (15 points):
   - Funding Stage (5 points): Indicates investment potential
   - Previous Tech Spend (5 points): Suggests openness to innovative solutions
   - Pricing Flexibility (5 points): Willingness to pay for high-impact solutions

3. Engagement & Interest (15 points):
   - Inbound Engagement (5 points): Leads that proactively reach out or engage with materials
   - Website Traffic Analysis (5 points): Frequent visits to AI-focused content
   - Email/LinkedIn Interactions (5 points): Positive replies, click-throughs, or inquiries

4. Relationship & Influence (15 points):
   - Decision-Maker Access (8 points): Direct access to C-level executives accelerates closing
   - Referral or Introduction (7 points): Referrals carry higher trust and likelihood to convert

5. AI Readiness & Digital Transformation (20 points):
   - Current Digital Transformation Efforts (10 points): Companies actively improving processes
   - Public Mention of AI Interest (10 points): Press releases, hiring for AI roles, etc.

Score ranges:
90-100: Exceptional opportunity - Perfect fit with immediate potential
80-89: Strong prospect - High alignment with clear path to conversion
70-79: Good potential - Solid fit with some nurturing needed
60-69: Moderate potential - Requires development but worth pursuing
50-59: Some potential - Long-term nurturing required
Below 50: Limited potential - Not recommended for active pursuit
`

const analysisFormat = `Format your response as a valid JSON object with these exact fields:
{
  "website": "string (optional)",
  "linkedinUrl": "string (optional)",
  "description": "string",
  "location": "string",
  "employees": "string",
  "industry": "string",
  "aiInterestLevel": number,
  "aiEvidence": "string",
  "leadScore": number,
  "isQualified": boolean,
  "notes": "string",
  "recentActivity": ["string"],
  "decisionMaker": "string",
  "compatibilityMetrics": {
    "companyProfileMatch": number,
    "relationshipInfluence": number,
    "budgetAlignment": number,
    "businessNeedsMatch": number
  }
}`

const suggestionFormat = `Format your response as a valid JSON array of objects with these exact fields:
[
  {
    "companyName": "string",
    "industry": "string",
    "location": "string",
    "website": "string (optional)",
    "linkedinUrl": "string (optional)",
    "description": "string",
    "employees": "string (optional)",
    "aiEvidence": "string",
    "leadScore": number
  }
]`

// Prompt fragments selected by the outreach workflow's organization-size
// classification.
var orgSizePrompts = map[string]string{
	"Startup":    "Focus on agility, growth potential, and cost-effective solutions.",
	"SME":        "Emphasize scalability, efficiency improvements, and competitive advantages.",
	"Enterprise": "Highlight enterprise-grade security, integration capabilities, and comprehensive support.",
}

var stylePrompts = map[string]string{
	"confident":     "Write with authority and conviction, emphasizing proven results and expertise.",
	"empathetic":    "Show understanding of their challenges and position solutions as helpful answers.",
	"collaborative": "Focus on partnership opportunities and mutual growth potential.",
	"inspirational": "Paint an exciting vision of future possibilities and transformative outcomes.",
	"authoritative": "Demonstrate deep industry knowledge and thought leadership.",
}

func personaPrompt(prompts map[string]string, persona string) string {
	if p, ok := prompts[persona]; ok {
		return p
	}
	return prompts["brain"]
}
