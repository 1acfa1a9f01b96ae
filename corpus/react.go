package corpus

import (
	"time"

	"github.com/prepdeck/prepdeck/guide"
)

// reactGuide returns the situational React question bank.
// Situational questions describe a symptom and grade the diagnosis, so the
// answers here are structured as symptom, cause, fix.
func reactGuide() *guide.Guide {
	return &guide.Guide{
		Slug:        "react-situational-questions",
		Title:       "50 Most Asked Situational React Questions",
		Kind:        guide.KindQuestionBank,
		Description: "Scenario-driven React questions: the interviewer describes a misbehaving app and grades your diagnosis. Answers follow a symptom, cause, fix structure.",
		UpdatedAt:   time.Date(2026, time.April, 2, 0, 0, 0, 0, time.UTC),
		Sections: []guide.Section{
			{
				Heading: "Rendering and Performance",
				Questions: []guide.Question{
					{
						ID:         "react-001",
						Topic:      "rendering",
						Difficulty: guide.DifficultyBeginner,
						Prompt:     "A teammate says a component 're-renders too much'. What do you establish before touching any code?",
						Answer: []string{
							"First, that a re-render and a DOM update are different things: a re-render is React calling the component function; the commit may change nothing. Then, whether there is a measured problem - React DevTools' profiler showing dropped frames or long commits - because render counts without a user-visible symptom are not a bug.",
							"Only after profiling do memo, useMemo, or state restructuring enter the conversation.",
						},
					},
					{
						ID:         "react-002",
						Topic:      "keys",
						Difficulty: guide.DifficultyIntermediate,
						Prompt:     "Rows in a sortable table keep their input values attached to the wrong rows after sorting. What happened?",
						Answer: []string{
							"The rows are keyed by array index. After sorting, index 0 is a different logical row, but React matches children by key and preserves each element's state in place, so the uncontrolled inputs stay with positions rather than records.",
							"Fix: key by a stable record identity. The deeper point to articulate: keys are identity across renders, not uniqueness within one render.",
						},
						Snippets: []guide.Snippet{
							{
								Language: "jsx",
								Code: `{rows.map((row) => (
  <Row key={row.id} row={row} />   // not key={index}
))}`,
							},
						},
					},
					{
						ID:         "react-003",
						Topic:      "performance",
						Difficulty: guide.DifficultyAdvanced,
						Prompt:     "You wrapped a child in React.memo but it still re-renders on every parent render. Why?",
						Answer: []string{
							"memo compares props with Object.is. Any prop created fresh each render - an inline object, array, or arrow function - fails the comparison every time, so the memo never hits.",
							"Fixes in preference order: move the value out of render if it is constant, useMemo/useCallback to stabilize it, or restructure so the child takes primitives. Also worth saying: if profiling never flagged this child, the memo itself was premature.",
						},
					},
					{
						ID:         "react-004",
						Topic:      "reconciliation",
						Difficulty: guide.DifficultyAdvanced,
						Prompt:     "Switching a subtree between two component types resets all its state. A PM asks you to preserve it. What do you explain?",
						Answer: []string{
							"Reconciliation's first heuristic: when the element type at a position changes, React tears down the old subtree, state included, and mounts fresh. State lives in the fiber tree, keyed by position and type, not in your components.",
							"To preserve it, keep the type stable and branch inside it, lift the state above the switch point, or accept the reset as correct behavior - often it is.",
						},
					},
					{
						ID:         "react-005",
						Topic:      "rendering",
						Difficulty: guide.DifficultyIntermediate,
						Prompt:     "A component reads the value of a state variable right after calling its setter and gets the old value. Is this a bug?",
						Answer: []string{
							"No. State setters schedule a re-render; they do not mutate the variable in the running closure. The new value is visible in the next render's scope. If the next step needs the updated value, derive it locally before setting, or use the functional updater form when the update depends on the previous state.",
						},
						Snippets: []guide.Snippet{
							{
								Language: "jsx",
								Code: `setCount(c => c + 1);  // safe under batching
setCount(c => c + 1);  // increments twice`,
							},
						},
					},
				},
			},
			{
				Heading: "State and Data Flow",
				Questions: []guide.Question{
					{
						ID:         "react-006",
						Topic:      "state-management",
						Difficulty: guide.DifficultyIntermediate,
						Prompt:     "Two sibling components need to stay in sync. Walk through your options.",
						Answer: []string{
							"Lift the state to the shared parent and pass value plus updater down - the default answer and usually the right one. If the tree between parent and siblings is deep, context removes the prop drilling. Reaching for an external store is justified only when the state is genuinely app-wide or must outlive the subtree.",
						},
					},
					{
						ID:         "react-007",
						Topic:      "context",
						Difficulty: guide.DifficultyAdvanced,
						Prompt:     "After moving theme and user data into one context, unrelated components re-render on every user update. Why, and what is the fix?",
						Answer: []string{
							"Every consumer of a context re-renders when the provider's value changes identity, and a combined value object changes identity when either half updates. Theme-only consumers are paying for user churn.",
							"Split into two contexts with separate providers, and memoize each provider value so identity only changes when content does.",
						},
					},
					{
						ID:         "react-008",
						Topic:      "component-design",
						Difficulty: guide.DifficultyExpert,
						Prompt:     "You inherit a component that takes fourteen props, half of which are forwarded two levels down. How do you refactor it?",
						Answer: []string{
							"Prop forwarding at that scale is a composition problem. Invert it: let the parent compose the pieces and pass them as children or named slots, so intermediate layers stop relaying data they never read.",
							"In the interview, sketch the before/after JSX rather than talking abstractly, and name the trade-off: composition moves wiring to the call site, which adds verbosity there in exchange for removing coupling in the middle.",
						},
						Snippets: []guide.Snippet{
							{
								Language: "jsx",
								Code: `// before: <Page userAvatarUrl={u} userName={n} ... />
// after:
<Page
  header={<Header avatar={<Avatar url={u} />} name={n} />}
/>`,
							},
						},
					},
					{
						ID:         "react-009",
						Topic:      "refs",
						Difficulty: guide.DifficultyIntermediate,
						Prompt:     "A value needs to survive re-renders but changing it must not trigger one. State or ref?",
						Answer: []string{
							"A ref. useRef returns a stable container whose .current mutations are invisible to the render cycle - right for timer ids, previous-value tracking, and imperative handles. The moment the UI must reflect the value, it belongs in state instead; a ref that the JSX reads is a bug waiting for a stale paint.",
						},
					},
				},
			},
			{
				Heading: "Effects, Forms, and Failure",
				Questions: []guide.Question{
					{
						ID:         "react-010",
						Topic:      "effects",
						Difficulty: guide.DifficultyIntermediate,
						Prompt:     "A search box fires a request per keystroke and results arrive out of order, showing stale data. Fix it.",
						Answer: []string{
							"Two problems: no debounce and no cleanup. Debounce the input so requests fire on pause, and have the effect's cleanup invalidate the in-flight request - an ignore flag or AbortController - so a late response from an old query cannot overwrite a newer one.",
						},
						Snippets: []guide.Snippet{
							{
								Language: "jsx",
								Code: `useEffect(() => {
  const ctl = new AbortController();
  fetchResults(query, ctl.signal).then(setResults).catch(() => {});
  return () => ctl.abort();   // cleanup kills stale requests
}, [query]);`,
							},
						},
						FollowUps: []string{
							"Where does the debounce timer live so it survives renders?",
						},
					},
					{
						ID:         "react-011",
						Topic:      "effects",
						Difficulty: guide.DifficultyAdvanced,
						Prompt:     "An effect reads a state variable and always sees its initial value. Diagnose.",
						Answer: []string{
							"A stale closure: the effect ran once (empty dependency array) and captured the first render's scope. The variable it reads will never update inside that closure.",
							"Fixes: declare the dependency and let the effect re-run, use the functional updater if the effect only writes, or hold the latest value in a ref when re-running the effect is genuinely undesirable (e.g. an interval).",
						},
					},
					{
						ID:         "react-012",
						Topic:      "forms",
						Difficulty: guide.DifficultyBeginner,
						Prompt:     "When do you choose an uncontrolled input over a controlled one?",
						Answer: []string{
							"Controlled inputs put the value in React state: validation on every keystroke, conditional disabling, instant cross-field logic. Uncontrolled inputs leave the value in the DOM and read it on submit - less code and fewer renders when none of that reactivity is needed.",
							"The interview answer: default to controlled when behavior depends on the value as it is typed, uncontrolled for fire-and-forget forms; mention that form libraries mix both.",
						},
					},
					{
						ID:         "react-013",
						Topic:      "error-boundaries",
						Difficulty: guide.DifficultyIntermediate,
						Prompt:     "A third-party widget throws during render and takes down the whole app. What containment do you add?",
						Answer: []string{
							"An error boundary around the widget: a class component implementing getDerivedStateFromError and componentDidCatch that swaps in a fallback UI and reports the error. The rest of the tree keeps rendering.",
							"State the limits unprompted: boundaries do not catch errors in event handlers, async callbacks, or SSR - those need try/catch and monitoring of their own.",
						},
					},
					{
						ID:         "react-014",
						Topic:      "hooks",
						Difficulty: guide.DifficultyBeginner,
						Prompt:     "A new hire calls useState inside an if block and sometimes state comes back scrambled. What rule did they break and why does it exist?",
						Answer: []string{
							"The Rules of Hooks: hooks must be called unconditionally, in the same order on every render. React identifies each hook by call order within the component; a conditional call shifts the order and every subsequent hook reads the wrong slot.",
							"The fix is to hoist the condition into the hook's logic - call useState always, branch on the value.",
						},
					},
				},
			},
		},
	}
}
