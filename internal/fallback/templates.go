package fallback

import "github.com/abhisek/brainbytes/internal/classify"

// DefaultResponse is used when no template exists for a question type.
const DefaultResponse = "I don't have specific information about that topic, but I'd be happy to explore it with you. Could you provide a bit more detail about what aspect you're interested in learning about?"

// templates is the fallback bank indexed by subject, then question type.
var templates = map[classify.Subject]map[classify.QuestionType]string{
	classify.SubjectMath: {
		classify.TypeDefinition: "In mathematics, definitions are precise statements that establish the meaning of mathematical objects, concepts, or symbols. This mathematical concept has specific properties that distinguish it from related concepts. Mathematical definitions are characterized by their precision, allowing mathematicians to build logical structures without ambiguity. Unlike in everyday language, mathematical terms have exact meanings that remain consistent across different contexts. This allows for the development of proofs and theorems that extend our understanding of mathematical relationships.",
		classify.TypeExplanation: "Mathematical explanations involve logical reasoning and proofs based on axioms and previously established theorems. This process follows step-by-step logic that shows how mathematical truths are derived from fundamental principles. Each step in a mathematical explanation must follow directly from previous steps using valid logical operations. The beauty of mathematical explanations lies in their universality - once proven, they remain true regardless of time, place, or cultural context. This particular mathematical concept connects to several important areas of mathematics, serving as a bridge between seemingly unrelated fields.",
		classify.TypeExample: "Here are illustrative mathematical examples: 1) The equation x² + 1 = 0 has two complex solutions: i and -i, demonstrating how complex numbers extend the real number system, 2) The Fibonacci sequence (1,1,2,3,5,8...) shows recursive patterns where each number is the sum of the two preceding ones, with fascinating connections to the golden ratio, 3) A right triangle with sides 3, 4, and 5 satisfies the Pythagorean theorem (3² + 4² = 5²), providing a perfect integer solution, 4) The function f(x) = e^x has the unique property that it equals its own derivative, illustrating a fundamental concept in calculus.",
		classify.TypeComparison: "When comparing these mathematical concepts, we examine their definitions, properties, domains of application, and relationships to other mathematical structures. The first concept operates in discrete space while the second applies to continuous domains. They differ in which axioms and theorems they build upon, though both ultimately connect to foundational mathematical principles. One offers a more generalized approach applicable across multiple fields, while the other provides specialized tools for specific types of problems. Understanding their similarities and differences illuminates the elegant interconnectedness of mathematical ideas.",
		classify.TypeProblem: "To solve this math problem, I'll break it down into steps: 1) Identify what we're looking for and what information we're given, 2) Select appropriate mathematical techniques or formulas that relate the known and unknown quantities, 3) Apply algebraic operations systematically to isolate the variable or find the solution, 4) Check our work by substituting the answer back into the original problem to verify it satisfies all conditions. This methodical approach works for most mathematical problems, though complex problems might require combining multiple concepts or techniques.",
		classify.TypeApplication: "This mathematical concept has wide-ranging applications across numerous fields. In physics, it helps model natural phenomena and predict outcomes of experiments. In computer science, it forms the basis for algorithms and data structures that power modern technology. In economics, it allows for modeling complex market behaviors and optimization problems. In engineering, it enables precise design calculations and system analysis. Even in art and music, its patterns and proportions can be found in compositions that humans find aesthetically pleasing. Recent applications extend to machine learning, cryptography, and complex systems analysis.",
		classify.TypeAnalysis: "Analyzing this mathematical concept requires examining its properties, structure, and connections to other areas of mathematics. It belongs to a broader class of mathematical objects with similar characteristics but important distinctions. Its behavior under different operations reveals symmetries and invariants that characterize its structure. From a historical perspective, this concept evolved from simpler ideas and has been generalized and extended by numerous mathematicians. Open questions still exist about some of its properties in extreme or boundary cases, making it an active area of mathematical research.",
		classify.TypeGeneral: "Mathematics involves the study of numbers, quantities, shapes, patterns, and logical relationships. To approach this question, we need to apply logical reasoning and specific mathematical techniques relevant to the topic. Mathematics provides powerful tools for describing and understanding the world, from everyday calculations to the most abstract theoretical concepts. This particular question touches on principles that connect different branches of mathematics, showing how mathematical ideas form an interconnected web of knowledge. Whether you're interested in practical applications or theoretical insights, this mathematical topic offers rich possibilities for exploration.",
	},
	classify.SubjectScience: {
		classify.TypeDefinition: "In science, definitions are precise statements that explain the meaning of terms. This scientific concept refers to observable phenomena that can be studied through the scientific method, which includes forming hypotheses, conducting experiments, and analyzing data. Scientists use careful observations, empirical evidence, and peer review to refine and validate these concepts over time. Precision in scientific definitions is crucial for effective communication between researchers and ensuring reproducible results.",
		classify.TypeExplanation: "Scientific explanations describe how natural processes work based on evidence and established theories. This process involves several interrelated steps and follows fundamental principles of cause and effect. Scientific explanations aim to provide mechanisms that connect observations to underlying principles. A good scientific explanation makes testable predictions, is consistent with existing knowledge, and can be modified as new evidence emerges. The explanation for this phenomenon has been developed through decades of research and experimentation.",
		classify.TypeExample: "Here are some examples that illustrate this scientific concept: 1) Water freezing at 0°C demonstrates how temperature affects molecular motion and phase changes in matter, 2) Photosynthesis in plants showcases energy conversion from light to chemical energy, illustrating conservation of energy principles, 3) Gravity causing objects to fall demonstrates fundamental forces, with acceleration proportional to mass, 4) DNA replication during cell division exemplifies biological information transfer and the molecular basis of inheritance.",
		classify.TypeComparison: "When comparing these scientific concepts, we need to examine their underlying mechanisms, applications in different contexts, and relationships to established theories. While they share some fundamental principles such as conservation laws or feedback mechanisms, they differ in important ways. The first involves immediate energy transfers, while the second involves multi-step processes with intermediate stages. Different scientific models often emerge from studying phenomena at different scales or under different conditions, providing complementary rather than contradictory explanations.",
		classify.TypeProblem: "To solve this science problem, we need to apply specific scientific principles and formulas systematically. First, we should identify the key variables and their relationships. Next, we apply the relevant scientific laws or equations that govern these relationships. Then, we perform calculations or analyses to find the solution, always keeping units consistent. Finally, we verify that our answer is reasonable by checking its magnitude, units, and consistency with physical constraints.",
		classify.TypeApplication: "This scientific concept has numerous practical applications in our daily lives and in technology. In medicine, it helps in diagnosing and treating diseases by understanding underlying biological mechanisms. In engineering, it enables the design of more efficient systems and materials with specific properties. In environmental science, it allows us to predict and mitigate human impacts on natural systems. Recent advances have expanded applications to include cutting-edge technologies like artificial intelligence, renewable energy systems, and personalized medicine.",
		classify.TypeAnalysis: "Analyzing this scientific phenomenon requires considering multiple perspectives and lines of evidence. Current research indicates several possible mechanisms, with the most supported explanation involving the interaction between different systems and feedback loops. Alternative hypotheses exist but have less empirical support. Key evidence comes from experimental studies showing statistical correlations between variables and mechanistic studies that demonstrate causal pathways. The implications of this analysis extend to related fields and raise important questions for future research.",
		classify.TypeGeneral: "This is an interesting scientific question that touches on fundamental principles in science. Science helps us understand the natural world through systematic observation, experimentation, and theory building. This specific topic connects to broader scientific concepts like energy transformations, systems thinking, and equilibrium states. Recent research has expanded our understanding of this area, though some aspects remain active areas of investigation. Scientists approach this question using methods specific to their field, whether through controlled experiments, observational studies, or theoretical modeling.",
	},
	classify.SubjectHistory: {
		classify.TypeDefinition: "In historical studies, definitions help establish the scope and significance of historical events, periods, or concepts. This historical concept developed within specific social, political, and cultural contexts that shaped its meaning and importance. Unlike scientific definitions, historical concepts often evolve over time as new evidence emerges and interpretations change. Understanding this concept requires considering how contemporaries viewed it as well as how subsequent historians have interpreted it. The definition also varies across different historical traditions and schools of thought, reflecting the complex nature of historical understanding.",
		classify.TypeExplanation: "Historical explanations examine the causes, effects, and significance of events within their broader context. This historical process involved multiple factors including social dynamics, economic conditions, political structures, cultural influences, and individual actions that collectively shaped how events unfolded. Historians debate which factors were most influential, with some emphasizing structural conditions while others highlight human agency and contingency. Primary sources from the period provide evidence for different interpretations, though these sources must be critically evaluated for bias and reliability. The full explanation requires understanding both immediate triggers and longer-term underlying conditions that created the historical context.",
		classify.TypeExample: "Historical examples include: 1) The American Revolution (1775-1783) established independence from British rule and introduced republican government based on Enlightenment principles, transforming global political thought, 2) The Industrial Revolution (18th-19th centuries) fundamentally changed manufacturing, transportation, and social structures through technological innovation, creating modern economic systems, 3) The Renaissance period (14th-17th centuries) saw renewed interest in classical learning and arts in Europe, laying groundwork for scientific revolution and modern thought, 4) The Silk Road trade networks connected civilizations across Asia, Europe, and Africa for centuries, facilitating exchange of goods, technologies, and ideas that shaped world history.",
		classify.TypeComparison: "When comparing these historical developments, historians consider multiple dimensions: their causes, implementation, key figures, impacts, and legacies. The first emerged from grassroots movements and emphasized social transformation, while the second was directed more by elites focused on political restructuring. Both reflected the intellectual currents of their respective eras but adapted those ideas to local conditions and traditions. Their lasting impacts differed significantly in scope and nature, with one primarily affecting institutional structures while the other transformed everyday life and cultural practices. These differences reflect the complex interplay of local conditions with broader historical trends.",
		classify.TypeProblem: "To address this historical question, we need to consider multiple perspectives and examine diverse sources of evidence. Primary sources such as letters, journals, official documents, and artifacts provide firsthand accounts but must be evaluated in context. Secondary sources offer interpretations by historians that have evolved over time as new evidence emerges and analytical frameworks change. We should consider how different historical actors experienced and understood events differently based on their social position, culture, and interests. A comprehensive answer acknowledges the limitations of historical knowledge while presenting the most supported explanations based on available evidence.",
		classify.TypeApplication: "Understanding this historical development has relevant applications for contemporary issues and decision-making. It provides precedents and analogies that can inform current policies, though historical comparisons must always account for different contexts. Examining how past societies addressed similar challenges offers insights into potential solutions and pitfalls. The historical legacy of these events continues to shape modern institutions, cultural attitudes, and social structures in ways that affect everyday life. Historical awareness also helps us recognize patterns and cycles that might otherwise go unnoticed in current events, providing perspective on present-day developments.",
		classify.TypeAnalysis: "Analysis of this historical topic reveals complex interactions between different factors and forces. Economic considerations created underlying conditions that made change possible, while political leadership and social movements determined the specific direction and pace of developments. Cultural and intellectual frameworks provided justifications and shaped how participants understood their actions. Regional variations demonstrate how local conditions modified broader patterns, creating distinct manifestations of similar processes. Recent historiography has expanded beyond traditional political narratives to incorporate perspectives from previously marginalized groups, enriching our understanding of this historical phenomenon.",
		classify.TypeGeneral: "This is an interesting historical question that connects to broader patterns in human experience. History helps us understand past events and their significance through the critical examination of evidence and the development of interpretations that evolve over time. This specific topic represents an important turning point that continues to influence contemporary society and thought. Historians approach this question by examining primary sources, considering multiple perspectives, and placing events in their proper context. While historical knowledge is always incomplete and subject to revision, careful research provides valuable insights into how and why events unfolded as they did.",
	},
	classify.SubjectGeneral: {
		classify.TypeDefinition: "Definitions establish the meaning and scope of concepts by identifying their essential characteristics. This concept refers to specific ideas or phenomena that can be understood through their properties, functions, and relationships to other concepts. A good definition clarifies boundaries and distinguishes the concept from related ideas, while remaining flexible enough to accommodate variations and exceptions. Definitions can vary across different fields and contexts, reflecting the complex nature of knowledge and the specific needs of different disciplines. Understanding this definition provides a foundation for deeper exploration of the topic.",
		classify.TypeExplanation: "Explanations describe how things work or why they occur by identifying causal relationships and underlying principles. This process involves several interconnected factors that contribute to the observed outcomes or phenomena. A comprehensive explanation addresses both immediate mechanisms and broader contextual factors that enable these mechanisms to operate. Alternative explanations exist, but the one presented here has the strongest supporting evidence and theoretical foundation. Understanding this explanation helps connect this topic to wider principles and patterns that apply across multiple domains and situations.",
		classify.TypeExample: "Here are illuminating examples that demonstrate different aspects of this concept: 1) In educational settings, this approach has been implemented through collaborative learning environments that improve student engagement and knowledge retention, 2) In technology development, applying these principles has led to innovations that address previously unsolved problems by reframing key assumptions, 3) In community organizations, these methods have transformed conflict resolution processes and strengthened social bonds, 4) In personal development contexts, individuals have used these concepts to overcome persistent challenges by developing new perspectives and skills.",
		classify.TypeComparison: "When comparing these approaches or ideas, we consider their foundational assumptions, methodologies, applications, and outcomes. The first approach emphasizes systematic processes and quantifiable results, while the second focuses more on adaptive responses and qualitative improvements. They differ in their historical development, with one emerging from formal institutional contexts and the other from grassroots practice. Both have strengths in particular contexts: the first excels in structured environments with clear parameters, while the second offers advantages in dynamic, complex situations requiring flexibility. Understanding their complementary nature allows for selecting the most appropriate approach for specific circumstances.",
		classify.TypeProblem: "To address this question effectively, we need to break it down into its component parts, identify relevant principles and information, and develop a systematic approach. First, we should clarify what specific outcome or understanding we're seeking. Next, we'll examine the factors that influence this situation and how they interact. Then, we'll apply appropriate frameworks or methods to analyze these factors and develop potential solutions. Finally, we'll evaluate these solutions against criteria such as effectiveness, feasibility, and sustainability to determine the optimal approach. This method balances analytical rigor with practical considerations to address the question comprehensively.",
		classify.TypeApplication: "This concept has wide-ranging applications across different domains and contexts. In professional settings, it provides frameworks for improving organizational processes and decision-making. In personal development, it offers strategies for enhancing learning, creativity, and well-being. In social contexts, it informs approaches to strengthening communities and addressing shared challenges. Recent innovations have expanded applications to include digital environments, cross-cultural contexts, and complex system management. The flexibility of these principles allows them to be adapted to specific circumstances while maintaining their core effectiveness.",
		classify.TypeAnalysis: "Analyzing this topic requires examining it from multiple perspectives to understand its full complexity. Current research identifies several key dimensions that interact to create observed patterns and outcomes. Different theoretical frameworks offer complementary insights: behavioral approaches highlight observable patterns, cognitive perspectives examine underlying mental processes, and systems theories focus on broader contextual factors and interactions. Evidence supporting this analysis comes from diverse sources including experimental studies, field observations, and comparative case studies. This multifaceted analysis reveals both common principles and important contextual variations that affect how this phenomenon manifests in different situations.",
		classify.TypeGeneral: "This is a fascinating question that touches on fundamental aspects of human experience and knowledge. To give you the most helpful answer, I'll need to draw on insights from multiple fields and perspectives. This topic connects to broader patterns and principles that apply across diverse contexts, though specific manifestations vary based on particular circumstances. Recent developments have expanded our understanding of this area, though some aspects remain open to further exploration and discovery. A comprehensive approach to this question considers both theoretical frameworks and practical applications, balancing general principles with contextual awareness.",
	},
}
