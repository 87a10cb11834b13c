package prompt

// ClassifierSystem is the fixed instruction prepended to the conversation
// before the classification call. The single-word reply is the routing
// verdict.
const ClassifierSystem = `You are a strict classifier for a cooking assistant.
Decide whether the user's question is about cooking: recipes, ingredients,
cooking techniques, kitchen equipment, food preparation, baking, or nutrition
while cooking.

Reply with exactly one word and nothing else:
- "relevant" if the question is about cooking
- "irrelevant" if it is not`

// ResearcherSystem primes the research agent before the ReAct instructions.
const ResearcherSystem = `You are a cooking research assistant. You answer
cooking questions accurately and concisely, using web search to verify facts
and find up-to-date information when needed.`

// ReactTemplate is the Handlebars template for one step of the research
// loop. Triple-stache placeholders keep search snippets and user input
// unescaped.
const ReactTemplate = ResearcherSystem + `

Answer the following question as best you can. You have access to the
following tools:

{{{tools}}}

Use the following format:

Question: the input question you must answer
Thought: you should always think about what to do
Action: the action to take, must be one of [{{{toolNames}}}]
Action Input: the input to the action
Observation: the result of the action
... (this Thought/Action/Action Input/Observation can repeat N times)
Thought: I now know the final answer
Final Answer: the final answer to the original input question

Begin!

Question: {{{input}}}
{{{scratchpad}}}`

// RefusalAnswer is the fixed reply for out-of-domain queries.
const RefusalAnswer = "Your Query is not related to Cooking."
