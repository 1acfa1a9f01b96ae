package guide

// Area groups topics by the part of the stack they belong to.
// Areas map one-to-one onto the guides a reader would study for a given role.
type Area string

const (
	// AreaJavaScript covers core language topics independent of any framework.
	AreaJavaScript Area = "JavaScript"

	// AreaReact covers the React component model, hooks, and rendering.
	AreaReact Area = "React"

	// AreaRedux covers external state management with Redux.
	AreaRedux Area = "Redux"

	// AreaNextJS covers server rendering, routing, and the Next.js runtime.
	AreaNextJS Area = "Next.js"

	// AreaHR covers behavioral and situational interview rounds.
	AreaHR Area = "HR"
)

// TopicInfo contains metadata about a question topic including its area,
// a short description, and concrete study advice.
type TopicInfo struct {
	Area        Area
	Description string
	StudyTip    string
}

// topicInfoMapping maps topic slugs to their metadata.
// This centralized mapping keeps topic labeling consistent across guides.
//
// Design decision: We use a map rather than embedding area and advice in each
// question because:
// 1. Multiple guides share topics, and the metadata must not drift between them
// 2. It provides a single source of truth for study advice
// 3. It makes it easy to generate a topic index across the whole corpus
var topicInfoMapping = map[string]TopicInfo{
	// JavaScript core
	"closures": {
		Area:        AreaJavaScript,
		Description: "Functions that capture variables from their defining scope.",
		StudyTip:    "Write a counter factory by hand, then explain why each returned function keeps its own count.",
	},
	"hoisting": {
		Area:        AreaJavaScript,
		Description: "How var/function declarations are moved to the top of their scope before execution.",
		StudyTip:    "Predict the output of snippets mixing var, let, and function declarations before running them.",
	},
	"event-loop": {
		Area:        AreaJavaScript,
		Description: "The task/microtask scheduling model behind asynchronous JavaScript.",
		StudyTip:    "Trace setTimeout vs Promise.then ordering on paper; interviewers almost always ask for the output order.",
	},
	"promises": {
		Area:        AreaJavaScript,
		Description: "Composable containers for eventual values, including chaining and error propagation.",
		StudyTip:    "Implement Promise.all from scratch once; it exercises every rule of promise resolution.",
	},
	"async-await": {
		Area:        AreaJavaScript,
		Description: "Syntactic layer over promises that makes asynchronous code read sequentially.",
		StudyTip:    "Know what an async function returns and where a thrown error surfaces in a try/catch.",
	},
	"prototypes": {
		Area:        AreaJavaScript,
		Description: "Delegation-based inheritance through the prototype chain.",
		StudyTip:    "Draw the chain for an instance created with new; label __proto__ and prototype explicitly.",
	},
	"this-binding": {
		Area:        AreaJavaScript,
		Description: "How the value of this is determined by call site, not definition site.",
		StudyTip:    "Memorize the four binding rules (default, implicit, explicit, new) and how arrow functions opt out.",
	},
	"equality": {
		Area:        AreaJavaScript,
		Description: "Coercion rules behind == versus the strict === comparison.",
		StudyTip:    "Keep a short list of surprising cases (null == undefined, NaN !== NaN) ready to cite.",
	},
	"array-methods": {
		Area:        AreaJavaScript,
		Description: "The map/filter/reduce family and when each applies.",
		StudyTip:    "Re-implement map and reduce by hand; reduce is the one candidates fumble under pressure.",
	},
	"strings": {
		Area:        AreaJavaScript,
		Description: "String traversal and manipulation exercises (reversal, palindromes, tokenizing).",
		StudyTip:    "Practice the classics on a whiteboard without autocomplete; off-by-one errors are the usual failure.",
	},
	"recursion": {
		Area:        AreaJavaScript,
		Description: "Self-referential solutions such as factorial and nested-structure flattening.",
		StudyTip:    "State the base case out loud before writing any code.",
	},
	"modules": {
		Area:        AreaJavaScript,
		Description: "ESM vs CommonJS semantics: live bindings, default exports, interop.",
		StudyTip:    "Be able to explain why a default export and a named export behave differently under re-export.",
	},

	// React
	"hooks": {
		Area:        AreaReact,
		Description: "useState, useEffect, and the rules that make hooks predictable.",
		StudyTip:    "Explain why hooks cannot be called conditionally; the answer reveals whether you understand the call-order contract.",
	},
	"effects": {
		Area:        AreaReact,
		Description: "Synchronizing components with external systems via useEffect.",
		StudyTip:    "Practice writing the cleanup function first; most effect bugs are missing cleanups.",
	},
	"state-management": {
		Area:        AreaReact,
		Description: "Choosing between local state, lifted state, context, and external stores.",
		StudyTip:    "Have a decision tree ready: who reads it, who writes it, how often it changes.",
	},
	"rendering": {
		Area:        AreaReact,
		Description: "What triggers a render and what work happens during one.",
		StudyTip:    "Be precise: a re-render is a function call, not a DOM update.",
	},
	"reconciliation": {
		Area:        AreaReact,
		Description: "The Virtual DOM diffing heuristics and the Fiber architecture behind them.",
		StudyTip:    "Know the two heuristics (different types produce different trees; keys identify children across renders).",
	},
	"keys": {
		Area:        AreaReact,
		Description: "Identity of list children across renders.",
		StudyTip:    "Prepare the index-as-key failure story: reordering a list with stateful rows.",
	},
	"performance": {
		Area:        AreaReact,
		Description: "Avoiding wasted renders with memo, useMemo, and useCallback.",
		StudyTip:    "Lead with measurement; reaching for memo before profiling is a red flag to interviewers.",
	},
	"forms": {
		Area:        AreaReact,
		Description: "Controlled vs uncontrolled inputs and validation strategies.",
		StudyTip:    "Be ready to code a controlled input with validation in under five minutes.",
	},
	"context": {
		Area:        AreaReact,
		Description: "Dependency injection for tree-wide values, and its re-render cost.",
		StudyTip:    "Explain why every consumer re-renders when the provider value changes, and how to split contexts to avoid it.",
	},
	"refs": {
		Area:        AreaReact,
		Description: "Escape hatches for DOM access and render-persistent mutable values.",
		StudyTip:    "Contrast useRef with useState in one sentence: changing a ref does not schedule a render.",
	},
	"error-boundaries": {
		Area:        AreaReact,
		Description: "Class components that catch render-phase errors in their subtree.",
		StudyTip:    "Remember what they do not catch: event handlers, async code, and the boundary itself.",
	},
	"component-design": {
		Area:        AreaReact,
		Description: "Composition patterns: children, render props, compound components.",
		StudyTip:    "Practice refactoring a prop-drilled tree into composition; it is the most common live exercise.",
	},

	// Redux
	"redux-store": {
		Area:        AreaRedux,
		Description: "Single-store architecture: actions, reducers, selectors.",
		StudyTip:    "Be able to say precisely what Redux adds over useReducer plus context, and what it costs.",
	},
	"redux-middleware": {
		Area:        AreaRedux,
		Description: "Intercepting dispatch for async work and logging.",
		StudyTip:    "Write the thunk middleware from memory; it is three lines and interviewers love asking for it.",
	},

	// Next.js / full stack
	"ssr": {
		Area:        AreaNextJS,
		Description: "Rendering HTML on the server per request.",
		StudyTip:    "Contrast SSR, SSG, and ISR in terms of when the HTML is produced and who pays the latency.",
	},
	"ssg": {
		Area:        AreaNextJS,
		Description: "Pre-rendering pages at build time.",
		StudyTip:    "Know which data characteristics make a page a build-time candidate.",
	},
	"hydration": {
		Area:        AreaNextJS,
		Description: "Attaching client-side behavior to server-rendered HTML.",
		StudyTip:    "Prepare one concrete hydration-mismatch bug and how you fixed it.",
	},
	"routing": {
		Area:        AreaNextJS,
		Description: "File-system routing, dynamic segments, and navigation.",
		StudyTip:    "Know the difference between a server navigation and a client transition.",
	},
	"api-routes": {
		Area:        AreaNextJS,
		Description: "Collocated server endpoints inside a Next.js app.",
		StudyTip:    "Be ready to discuss when an API route beats a separate backend service, and when it does not.",
	},
	"data-fetching": {
		Area:        AreaNextJS,
		Description: "Server components, caching layers, and request waterfalls.",
		StudyTip:    "Sketch the request flow for one page of a real app you built; specifics beat theory here.",
	},

	// HR / behavioral
	"behavioral": {
		Area:        AreaHR,
		Description: "Situational questions about past behavior as a predictor of future behavior.",
		StudyTip:    "Prepare six STAR stories you can bend to most prompts; do not improvise stories live.",
	},
	"teamwork": {
		Area:        AreaHR,
		Description: "Collaboration, code review culture, and working across functions.",
		StudyTip:    "Pick stories where you changed your mind; they land better than stories where you were right.",
	},
	"conflict": {
		Area:        AreaHR,
		Description: "Disagreements with peers or managers and how they were resolved.",
		StudyTip:    "Never make the other party the villain; interviewers assume you will describe them the same way someday.",
	},
	"career-goals": {
		Area:        AreaHR,
		Description: "Motivation, growth direction, and fit with the role.",
		StudyTip:    "Tie your answer to the specific team; generic ambition reads as a non-answer.",
	},
	"strengths-weaknesses": {
		Area:        AreaHR,
		Description: "Self-assessment questions and their many disguises.",
		StudyTip:    "Name a real weakness with a running mitigation; 'perfectionism' is an automatic eye-roll.",
	},
}

// GetTopicInfo returns the metadata for a topic slug.
// Returns a default TopicInfo with an empty area if the topic is unknown;
// Guide.Validate rejects unknown topics, so the default only appears for
// data that has not been validated yet.
func GetTopicInfo(topic string) TopicInfo {
	if info, ok := topicInfoMapping[topic]; ok {
		return info
	}
	return TopicInfo{
		Description: "Unlabeled topic.",
		StudyTip:    "Add this topic to the topic table so guides stay consistent.",
	}
}

// KnownTopic reports whether the topic slug exists in the topic table.
func KnownTopic(topic string) bool {
	_, ok := topicInfoMapping[topic]
	return ok
}

// TopicsByArea returns all topic slugs registered for the given area.
// The result order is unspecified; callers sort when they need stability.
func TopicsByArea(area Area) []string {
	var topics []string
	for slug, info := range topicInfoMapping {
		if info.Area == area {
			topics = append(topics, slug)
		}
	}
	return topics
}
