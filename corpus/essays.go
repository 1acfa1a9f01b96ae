package corpus

import (
	"time"

	"github.com/prepdeck/prepdeck/guide"
)

// reduxEssay returns the React-vs-Redux comparison essay.
func reduxEssay() *guide.Guide {
	return &guide.Guide{
		Slug:        "react-vs-redux",
		Title:       "React State vs Redux: Choosing a Home for Your Data",
		Kind:        guide.KindEssay,
		Description: "A comparison essay: what React's own state tools give you, what Redux adds on top, and how to decide without cargo-culting either answer.",
		UpdatedAt:   time.Date(2026, time.January, 28, 0, 0, 0, 0, time.UTC),
		Sections: []guide.Section{
			{
				Heading: "Two Tools, One Question",
				Intro: []string{
					"React and Redux are not competitors, though interview questions love to frame them that way. React owns rendering: it turns state into UI and keeps the two in sync. Redux owns state: a single store, changed only by dispatched actions, read through subscriptions. The real question is never 'React or Redux' but 'where should this particular piece of state live' - and the answer differs per piece.",
					"React's built-in options cover more ground than newcomers expect. useState handles local concerns; useReducer gives the action/reducer discipline for one component's complex state; context carries values down the tree without prop drilling. A great deal of production React ships with nothing else.",
				},
			},
			{
				Heading: "What Redux Actually Adds",
				Intro: []string{
					"Redux's contribution is not 'global state' - context does that. It is the constraint set: every change is a serializable action through a pure reducer, which buys time-travel debugging, action logs that double as audit trails, middleware as a single choke point for effects, and selectors that decouple storage shape from component needs.",
					"The costs are equally concrete: boilerplate (reduced but not erased by Redux Toolkit), a second mental model for data flow, and the standing temptation to put everything in the store, including state that three lines of useState would have handled. Server data is the classic mis-tenant: copied into the store, it goes stale and acquires hand-rolled caching logic that query libraries already solve.",
				},
			},
			{
				Heading: "A Decision Procedure",
				Intro: []string{
					"Ask three questions of each piece of state. Who reads it - one component, a subtree, or the whole app? Who writes it - one owner or many distant writers? What tooling does it deserve - does an audit trail of changes pay for itself? Local read/write stays in useState. Subtree scope with stable values suits context. Many writers, cross-cutting reads, and a real need for the action log: that is Redux's home turf.",
					"In an interview, the strongest answer names this procedure, gives one example of each placement from a real project, and volunteers the anti-pattern: reaching for the store by default. That last sentence is what separates candidates who used Redux from candidates who understood it.",
				},
			},
		},
	}
}

// renderingEssay returns the long-form explainer on React's rendering
// pipeline. This is exposition about React's public behavior, written for
// interview preparation; it describes the machinery, it does not implement it.
func renderingEssay() *guide.Guide {
	return &guide.Guide{
		Slug:        "how-react-renders",
		Title:       "How React Renders: Virtual DOM, Fiber, and the Commit Phase",
		Kind:        guide.KindEssay,
		Description: "A guided tour of React's rendering pipeline - element trees, reconciliation, the Fiber architecture, and the render/commit split - at the depth senior interviews probe.",
		UpdatedAt:   time.Date(2026, time.June, 17, 0, 0, 0, 0, time.UTC),
		Sections: []guide.Section{
			{
				Heading: "Elements and the Virtual DOM",
				Intro: []string{
					"Every render, your components return React elements: plain, immutable objects describing what the UI should look like - a type, props, and children. The tree of these descriptions is what people call the Virtual DOM. It is cheap to produce precisely because it is only a description; no browser work happens while building it.",
					"The premise of the whole design follows from one asymmetry: creating JavaScript objects is fast, while touching the real DOM - with its layout, style recalculation, and paint costs - is slow. So React lets you re-describe the entire UI on every change, and takes on the job of finding the minimal set of real DOM mutations that make the description true.",
				},
			},
			{
				Heading: "Reconciliation: Diffing on a Budget",
				Intro: []string{
					"Comparing two arbitrary trees optimally is O(n^3) - useless at UI scale. Reconciliation gets to O(n) with two heuristics. First, elements of different types produce different trees: if a position changes from one component or tag to another, React discards the old subtree wholesale, state included, and builds the new one fresh. Second, keys give children a stable identity across renders, letting React match list items by identity instead of by position.",
					"Both heuristics surface directly in interview questions. The type rule explains why switching a subtree between two components resets its state. The key rule explains every bug where index-keyed list rows keep state attached to positions after a reorder. Neither is trivia; they are the two contracts your component structure makes with the diff.",
				},
			},
			{
				Heading: "Fiber: Rendering as Interruptible Work",
				Intro: []string{
					"Before React 16, reconciliation was one synchronous recursive pass - once started, it ran to completion, and a large update could block the main thread past a frame budget. Fiber rearchitected this: each component instance gets a fiber, a linked-list node holding its type, props, state, and effect information. A recursive traversal became an iterative loop over a work-in-progress tree that can pause after any unit, yield to the browser, and resume - or throw the partial work away if something more important arrives.",
					"Importance is explicit: updates are assigned to priority lanes. A keystroke in a controlled input sits in a high-priority lane; a transition-wrapped list filter sits in a lower one. The scheduler works on the highest-priority pending lanes and lets urgent updates interrupt half-finished low-priority renders. This is what concurrent rendering means operationally: not parallelism, but interruptibility plus prioritization.",
				},
			},
			{
				Heading: "Render Phase, Commit Phase",
				Intro: []string{
					"The pipeline splits in two. The render phase builds the work-in-progress fiber tree and computes the diff. It is pure computation, pausable and restartable - which is exactly why it must be side-effect free, and why component bodies that mutate or subscribe during render misbehave under concurrency. StrictMode double-invokes render in development to flush out precisely these violations.",
					"The commit phase then applies the computed mutations to the real DOM, runs layout effects, and swaps the work-in-progress tree in as current. Commit is synchronous and uninterruptible - the DOM must never be visible half-updated. This split is the answer to a family of interview questions: why effects run after paint, why refs are attached in commit, and why a slow render phase no longer freezes typing the way it did a decade ago.",
					"The pipeline end to end: state update, scheduled into a lane; render phase diffs under the two heuristics, pausable per fiber; commit phase applies mutations atomically. Hold that sequence and most rendering questions - stale UI, reset state, effect timing - become lookups rather than mysteries.",
				},
			},
		},
	}
}
