package corpus

import (
	"time"

	"github.com/prepdeck/prepdeck/guide"
)

// fullstackGuide returns the full-stack and Next.js question bank.
func fullstackGuide() *guide.Guide {
	return &guide.Guide{
		Slug:        "fullstack-nextjs-guide",
		Title:       "Full-Stack and Next.js Interview Guide",
		Kind:        guide.KindQuestionBank,
		Description: "Server rendering, data fetching, and the questions that appear once a React role touches the backend.",
		UpdatedAt:   time.Date(2026, time.May, 9, 0, 0, 0, 0, time.UTC),
		Sections: []guide.Section{
			{
				Heading: "Rendering Strategies",
				Questions: []guide.Question{
					{
						ID:         "fs-001",
						Topic:      "ssr",
						Difficulty: guide.DifficultyIntermediate,
						Prompt:     "Compare SSR, SSG, and ISR. How do you choose for a given page?",
						Answer: []string{
							"The axis is when HTML is produced and who pays the latency. SSG builds at deploy time: fastest to serve, right for content that changes with deploys. SSR renders per request: always fresh, but every visitor pays the render. ISR is SSG plus a revalidation window: stale-while-revalidate for pages.",
							"Choose by data volatility and personalization: marketing pages SSG, dashboards SSR or client-rendered behind auth, catalogs ISR with a revalidation matched to how often inventory actually changes.",
						},
					},
					{
						ID:         "fs-002",
						Topic:      "hydration",
						Difficulty: guide.DifficultyAdvanced,
						Prompt:     "The console shows 'text content does not match server-rendered HTML'. What causes this class of bug?",
						Answer: []string{
							"Hydration expects the client's first render to reproduce the server's HTML exactly. Anything nondeterministic between the two breaks it: timestamps and locale formatting, Math.random, reading window or localStorage during render, or user-agent branching.",
							"Fixes: move browser-only reads into effects, render a stable placeholder first, or mark the subtree client-only. Mention that suppressHydrationWarning exists and is a last resort for genuinely unavoidable mismatches like clocks.",
						},
					},
					{
						ID:         "fs-003",
						Topic:      "hydration",
						Difficulty: guide.DifficultyIntermediate,
						Prompt:     "A server-rendered page paints quickly but buttons do nothing for a second. Explain to a non-engineer what is happening.",
						Answer: []string{
							"The server sent finished HTML, so the page is visible immediately. The JavaScript that makes it interactive arrives and attaches afterward - that attachment is hydration, and until it finishes, clicks have no handlers. The paint-to-interactive gap is the trade SSR makes.",
							"Follow with the levers: less JavaScript, code splitting, streaming, and server components keeping logic off the client entirely.",
						},
					},
				},
			},
			{
				Heading: "Routing and APIs",
				Questions: []guide.Question{
					{
						ID:         "fs-004",
						Topic:      "routing",
						Difficulty: guide.DifficultyBeginner,
						Prompt:     "How does file-system routing map files to URLs, and how are dynamic segments expressed?",
						Answer: []string{
							"Directories under the app (or pages) root become URL segments; a bracketed directory like [id] is a dynamic segment whose value arrives as a param; catch-all segments use [...slug]. Layouts nest by directory, so shared chrome lives once at the level it applies to.",
						},
					},
					{
						ID:         "fs-005",
						Topic:      "api-routes",
						Difficulty: guide.DifficultyIntermediate,
						Prompt:     "When is an API route inside the Next.js app the wrong choice?",
						Answer: []string{
							"API routes shine as a backend-for-frontend: proxying third parties to hide keys, shaping responses for specific pages. They are the wrong home for anything another consumer needs (mobile app, partner API), long-running work that outlives a request, or logic that must scale separately from page rendering - those belong in a standalone service.",
						},
					},
					{
						ID:         "fs-006",
						Topic:      "data-fetching",
						Difficulty: guide.DifficultyAdvanced,
						Prompt:     "A page makes four sequential fetches and takes two seconds. Walk through how you would fix the waterfall.",
						Answer: []string{
							"First, draw the dependency graph: which requests actually need another's result? Independent requests run concurrently with Promise.all or parallel server-component fetches. Truly dependent chains can often collapse into one endpoint that joins server-side, where the data is adjacent.",
							"Then cache: per-request deduplication for repeated reads, and response caching with an honest revalidation window for data that tolerates staleness.",
						},
					},
					{
						ID:         "fs-007",
						Topic:      "data-fetching",
						Difficulty: guide.DifficultyExpert,
						Prompt:     "Design the data layer for a dashboard with live prices, a slowly-changing org tree, and user preferences.",
						Answer: []string{
							"Segment by change rate and consistency need. Live prices: a subscription (WebSocket or SSE) feeding client state, with reconnect and snapshot-on-connect. Org tree: server-rendered and cached with long revalidation, since staleness of minutes is invisible. Preferences: read at session start, written through optimistically.",
							"The grading criteria are whether you segment rather than pick one mechanism for everything, and whether you name failure handling for the subscription path unprompted.",
						},
					},
				},
			},
			{
				Heading: "State Across the Stack",
				Questions: []guide.Question{
					{
						ID:         "fs-008",
						Topic:      "state-management",
						Difficulty: guide.DifficultyAdvanced,
						Prompt:     "Server state and client state keep drifting apart in your app. What distinction is the team missing?",
						Answer: []string{
							"Server state is a cache of someone else's truth: it can go stale, needs revalidation, and its lifecycle is fetch/invalidate. Client state is owned truth: form drafts, toggles, selection. Bugs breed when server data is copied into client stores and mutated there.",
							"The fix is architectural: a query/cache layer (with invalidation on mutation) for server state, and plain component state for the genuinely local remainder - which is usually smaller than the team thinks.",
						},
					},
					{
						ID:         "fs-009",
						Topic:      "redux-middleware",
						Difficulty: guide.DifficultyIntermediate,
						Prompt:     "Where does async work live in a Redux app, and why not in reducers?",
						Answer: []string{
							"Reducers must be pure - same state and action in, same state out - so effects are banished to middleware, which sits between dispatch and the reducer and may run async work, dispatching plain result actions when done. Thunks are the minimal version: dispatching a function instead of an action.",
						},
						Snippets: []guide.Snippet{
							{
								Language:    "javascript",
								Description: "The entire thunk middleware, from memory.",
								Code: `const thunk = ({ dispatch, getState }) => (next) => (action) =>
  typeof action === "function"
    ? action(dispatch, getState)
    : next(action);`,
							},
						},
					},
				},
			},
		},
	}
}
