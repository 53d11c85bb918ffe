package orchestrator

// Log prefixes
const (
	LogPrefixProcess = "internal.orchestrator.Process"
)

// WelcomeMessage greets a fresh session with the five canned quick
// actions.
const WelcomeMessage = `👋 **Welcome to the GSBG.IN SEO Management Agent!**

I'm your SEO consultant for gsbg.in exclusively. Please select a service:

1. **Audit gsbg.in**
2. **Research keywords** for Salesforce consulting
3. **Analyze content** at https://www.gsbg.in/services
4. **Check gsbg.in performance**
5. **Generate comprehensive SEO report**

What would you like to work on today?`

// ClarifyMessage is returned when routing picked no specialist.
const ClarifyMessage = `🤔 I couldn't match that request to one of my services. Try one of these:

- **Audit gsbg.in** — technical SEO audit
- **Research keywords for [topic]** — keyword strategy
- **Analyze content at [url]** — on-page content analysis
- **Check gsbg.in performance** — performance monitoring
- **Generate comprehensive report** — cross-cutting SEO report`

// QuickActions are the canned commands exposed to the chat surface.
var QuickActions = []string{
	"Audit gsbg.in",
	"Research keywords for Salesforce consulting",
	"Analyze content at https://www.gsbg.in/services",
	"Check gsbg.in performance",
	"Generate comprehensive report for gsbg.in",
}
