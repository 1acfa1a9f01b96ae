package corpus

import (
	"time"

	"github.com/prepdeck/prepdeck/guide"
)

// javascriptGuide returns the core JavaScript question bank.
// The final section mirrors the classic whiteboard exercises that the
// exercise package implements in Go, so readers can study the JavaScript
// form and run the Go form.
func javascriptGuide() *guide.Guide {
	return &guide.Guide{
		Slug:        "javascript-interview-questions",
		Title:       "100 JavaScript Interview Questions",
		Kind:        guide.KindQuestionBank,
		Description: "Core language questions asked in nearly every front-end screen, from scoping rules to the event loop, plus the classic coding exercises.",
		UpdatedAt:   time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC),
		Sections: []guide.Section{
			{
				Heading: "Language Fundamentals",
				Intro: []string{
					"These questions check vocabulary and mental models. Answer them crisply; rambling on fundamentals is a worse signal than a wrong answer delivered with awareness of the gap.",
				},
				Questions: []guide.Question{
					{
						ID:         "js-001",
						Topic:      "closures",
						Difficulty: guide.DifficultyBeginner,
						Prompt:     "What is a closure, and where have you used one deliberately?",
						Answer: []string{
							"A closure is a function that retains access to the variables of the scope where it was defined, even after that scope has returned. Every function in JavaScript closes over its defining environment; the term usually refers to cases where that capture is load-bearing.",
							"Deliberate uses worth citing: event handlers that remember per-item data, debounce/throttle wrappers that hold a timer, and module patterns that keep private state.",
						},
						Snippets: []guide.Snippet{
							{
								Language:    "javascript",
								Description: "Each call to makeCounter gets an independent captured count.",
								Code: `function makeCounter() {
  let count = 0;
  return () => ++count;
}

const a = makeCounter();
const b = makeCounter();
a(); // 1
a(); // 2
b(); // 1`,
							},
						},
						FollowUps: []string{
							"How can a closure cause a memory leak?",
							"What does a closure over a loop variable print with var versus let?",
						},
					},
					{
						ID:         "js-002",
						Topic:      "hoisting",
						Difficulty: guide.DifficultyBeginner,
						Prompt:     "What will this log, and why: calling a function before its declaration, and reading a let before its declaration?",
						Answer: []string{
							"Function declarations are hoisted with their bodies, so calling one earlier in the same scope works. let and const declarations are hoisted too, but they sit in the temporal dead zone until the declaration executes, so reading them earlier throws a ReferenceError rather than yielding undefined.",
							"var is the odd one out: it hoists the binding initialized to undefined, which is where most of the classic trick questions live.",
						},
						Snippets: []guide.Snippet{
							{
								Language: "javascript",
								Code: `greet();            // "hi" - declaration hoisted with body
function greet() { console.log("hi"); }

console.log(x);     // undefined - var hoisted without value
var x = 1;

console.log(y);     // ReferenceError - temporal dead zone
let y = 2;`,
							},
						},
					},
					{
						ID:         "js-003",
						Topic:      "equality",
						Difficulty: guide.DifficultyBeginner,
						Prompt:     "When does == give a different result from ===?",
						Answer: []string{
							"=== compares without coercion: different types are simply unequal. == coerces operands toward a common type first, following a table of rules that few people hold in their head, which is exactly why style guides ban it.",
							"The one idiom interviewers accept for ==: x == null, which is true for both null and undefined in a single check.",
						},
						Snippets: []guide.Snippet{
							{
								Language: "javascript",
								Code: `0 == "0"        // true  (string coerced to number)
0 === "0"       // false
null == undefined  // true
NaN === NaN     // false - NaN never equals anything`,
							},
						},
					},
					{
						ID:         "js-004",
						Topic:      "this-binding",
						Difficulty: guide.DifficultyIntermediate,
						Prompt:     "How is the value of this determined, and how do arrow functions differ?",
						Answer: []string{
							"this is bound at call time by the call site, following four rules in priority order: new binding (constructor call), explicit binding (call/apply/bind), implicit binding (method call through an object), and default binding (undefined in strict mode, globalThis otherwise).",
							"Arrow functions have no this of their own; they capture the this of the enclosing scope lexically, which is why they work as callbacks inside methods but fail as methods themselves.",
						},
						FollowUps: []string{
							"What does bind return, and can you re-bind the result?",
						},
					},
					{
						ID:         "js-005",
						Topic:      "prototypes",
						Difficulty: guide.DifficultyIntermediate,
						Prompt:     "Walk through what happens on property lookup when the property is not on the object itself.",
						Answer: []string{
							"The engine walks the prototype chain: the object's [[Prototype]] (reachable via Object.getPrototypeOf), then that object's prototype, and so on until it finds the property or hits null. Only reads delegate; writes land on the receiver and shadow the inherited property.",
							"class syntax is sugar over exactly this mechanism: methods live on Constructor.prototype, and instances delegate to it.",
						},
					},
					{
						ID:         "js-006",
						Topic:      "modules",
						Difficulty: guide.DifficultyIntermediate,
						Prompt:     "What actually differs between ESM and CommonJS besides syntax?",
						Answer: []string{
							"ESM exports are live bindings resolved at parse time, which enables tree shaking and circular-import tolerance; CommonJS exports are a plain object snapshot produced by running the module. ESM is also asynchronous by design, which is why top-level await exists there and not in CJS.",
							"Interop is the practical pain point: a CJS module imported from ESM surfaces as a default export whose shape depends on the bundler, a detail worth mentioning because everyone has been bitten by it.",
						},
					},
					{
						ID:         "js-007",
						Topic:      "array-methods",
						Difficulty: guide.DifficultyBeginner,
						Prompt:     "When would you reach for reduce over map or filter?",
						Answer: []string{
							"map and filter each produce an array of the same or smaller length; reduce is for collapsing a list into anything else: a sum, an object index, a grouped structure. If the accumulator is itself an array, a map/filter chain is almost always clearer.",
						},
						Snippets: []guide.Snippet{
							{
								Language: "javascript",
								Code: `const byId = users.reduce((acc, u) => {
  acc[u.id] = u;
  return acc;
}, {});`,
							},
						},
					},
				},
			},
			{
				Heading: "Asynchrony and the Event Loop",
				Intro: []string{
					"Output-ordering questions are near-universal in screens. The model to internalize: one call stack, a microtask queue drained to empty after every task, and macrotasks (timers, I/O) taken one per loop turn.",
				},
				Questions: []guide.Question{
					{
						ID:         "js-008",
						Topic:      "event-loop",
						Difficulty: guide.DifficultyAdvanced,
						Prompt:     "Predict the output order: synchronous log, setTimeout(0), Promise.then, and another synchronous log.",
						Answer: []string{
							"Synchronous logs first, in source order. Then the microtask queue drains, so the Promise.then callback runs. Only then does the event loop take the next macrotask, running the setTimeout callback, regardless of its zero delay.",
						},
						Snippets: []guide.Snippet{
							{
								Language: "javascript",
								Code: `console.log("a");
setTimeout(() => console.log("b"), 0);
Promise.resolve().then(() => console.log("c"));
console.log("d");
// a, d, c, b`,
							},
						},
						FollowUps: []string{
							"Where does queueMicrotask fit?",
							"What starves when a then callback schedules another microtask forever?",
						},
					},
					{
						ID:         "js-009",
						Topic:      "promises",
						Difficulty: guide.DifficultyIntermediate,
						Prompt:     "What does a then callback's return value do to the chain?",
						Answer: []string{
							"Whatever a then callback returns becomes the resolution of the next promise in the chain. Returning a plain value resolves with it; returning a promise splices that promise in, so the chain waits on it; throwing rejects the next link, which is how errors propagate to the nearest catch.",
						},
					},
					{
						ID:         "js-010",
						Topic:      "async-await",
						Difficulty: guide.DifficultyIntermediate,
						Prompt:     "What does an async function return, and where does a thrown error go?",
						Answer: []string{
							"Always a promise. A return value resolves it; a throw rejects it. Inside the function, await unwraps a promise and converts rejection into a throw at the await site, which is what makes try/catch work for asynchronous code.",
							"A subtlety worth volunteering: the code before the first await runs synchronously on the caller's stack.",
						},
					},
					{
						ID:         "js-011",
						Topic:      "promises",
						Difficulty: guide.DifficultyAdvanced,
						Prompt:     "Compare Promise.all, allSettled, race, and any. When is all the wrong tool?",
						Answer: []string{
							"all fails fast: one rejection rejects the aggregate, and the other results are lost. allSettled always resolves with per-promise outcomes, which is what you want for independent operations where partial success is meaningful. race settles with the first settlement of any kind, useful for timeouts; any resolves with the first fulfillment and only rejects if everything fails.",
						},
					},
				},
			},
			{
				Heading: "Coding Exercises",
				Intro: []string{
					"The scratch-pad classics. Interviewers do not care that these are solved problems; they care how you handle edge cases and whether you can state complexity without prompting. Each exercise here names its edge cases explicitly.",
				},
				Questions: []guide.Question{
					{
						ID:         "js-012",
						Topic:      "strings",
						Difficulty: guide.DifficultyBeginner,
						Prompt:     "Find the longest word in a sentence.",
						Answer: []string{
							"Split on spaces and keep a linear scan over the tokens, tracking the longest seen so far. O(n) over the input length. Edge cases to name out loud: empty input returns an empty result, and punctuation sticks to words unless the interviewer asks you to strip it.",
						},
						Snippets: []guide.Snippet{
							{
								Language: "javascript",
								Code: `function getLongestWord(str) {
  if (typeof str !== "string") return;
  let longest = "";
  for (const word of str.split(" ")) {
    if (word.length > longest.length) longest = word;
  }
  return longest;
}`,
							},
						},
						FollowUps: []string{
							"What should happen on a tie?",
							"How would you handle multiple consecutive spaces?",
						},
					},
					{
						ID:         "js-013",
						Topic:      "recursion",
						Difficulty: guide.DifficultyBeginner,
						Prompt:     "Write factorial, and defend your handling of bad input.",
						Answer: []string{
							"Recursive with base cases at 0 and 1, both returning 1. Negative input has no factorial; returning undefined silently is the scratch-pad habit, but in production code you would throw or return an explicit error so callers cannot mistake absence for zero.",
							"Mention overflow: factorials outgrow safe integers at 21!, so a real implementation either caps the input or switches to BigInt.",
						},
						Snippets: []guide.Snippet{
							{
								Language: "javascript",
								Code: `function getFactorial(num) {
  if (num < 0) return undefined;
  if (num <= 1) return 1;
  return num * getFactorial(num - 1);
}`,
							},
						},
					},
					{
						ID:         "js-014",
						Topic:      "strings",
						Difficulty: guide.DifficultyBeginner,
						Prompt:     "Reverse a string, then use it to check for palindromes.",
						Answer: []string{
							"Build the reversal by walking the input and prepending, or index from the end and append. The palindrome check is then a single comparison against the reversal.",
							"The edge case that separates candidates: JavaScript strings are UTF-16, so indexing splits surrogate pairs. Spreading into an array ([...str]) iterates code points and survives emoji.",
						},
						Snippets: []guide.Snippet{
							{
								Language: "javascript",
								Code: `function reverseStr(str) {
  let out = "";
  for (let i = str.length - 1; i >= 0; i--) out += str[i];
  return out;
}

function palindromeString(str) {
  return str === reverseStr(str);
}`,
							},
						},
						FollowUps: []string{
							"Should the check ignore case and punctuation?",
						},
					},
					{
						ID:         "js-015",
						Topic:      "recursion",
						Difficulty: guide.DifficultyIntermediate,
						Prompt:     "Flatten an arbitrarily nested array without using Array.prototype.flat.",
						Answer: []string{
							"Recurse: walk the array, and for each element either recurse into it (Array.isArray) or push it to the result. The output must match flat(Infinity) exactly; interviewers check that scalars at different depths come out in document order.",
						},
						Snippets: []guide.Snippet{
							{
								Language: "javascript",
								Code: `function flattenArr(arr) {
  const out = [];
  for (const el of arr) {
    if (Array.isArray(el)) {
      out.push(...flattenArr(el));
    } else {
      out.push(el);
    }
  }
  return out;
}

flattenArr([[1, 2], [3, [4, 5]]]); // [1, 2, 3, 4, 5]`,
							},
						},
						FollowUps: []string{
							"How would you add a depth limit?",
							"What is the stack risk on very deep nesting?",
						},
					},
				},
			},
		},
	}
}
