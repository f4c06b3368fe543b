package answers

// table maps lower-cased canonical questions to canned answers.
var table = map[string]string{
	// Math
	"what is 1+1": "The answer to 1+1 is 2. This is a fundamental addition operation in mathematics where we combine the value 1 with another value 1 to get 2.",
	"1+1": "The answer to 1+1 is 2. In mathematical terms, this represents the sum of two units, which equals two units.",
	"what is the pythagorean theorem": "The Pythagorean theorem states that in a right triangle, the square of the length of the hypotenuse (the side opposite the right angle) is equal to the sum of the squares of the lengths of the other two sides. It is expressed as a² + b² = c², where c is the length of the hypotenuse and a and b are the lengths of the other two sides. This theorem is fundamental to trigonometry and has numerous applications in construction, navigation, physics, and other fields.",
	"what is pi": "Pi (π) is a mathematical constant defined as the ratio of a circle's circumference to its diameter. It's approximately equal to 3.14159, though it's an irrational number with an infinite, non-repeating decimal representation. Pi appears in many formulas across mathematics and physics, especially those involving circles, spheres, and other curved shapes. It's also found in unexpected areas like number theory, statistics, and even the natural world in river meandering patterns and the spiral structure of DNA.",
	"what is calculus": "Calculus is a branch of mathematics that studies continuous change and motion. It has two main branches: differential calculus (concerning rates of change and slopes of curves) and integral calculus (concerning accumulation of quantities and the areas under curves). Calculus provides powerful tools for modeling systems with changing quantities in science, engineering, economics, and many other fields. It was independently developed by Isaac Newton and Gottfried Wilhelm Leibniz in the late 17th century and has become fundamental to modern scientific understanding of the world.",

	// Science
	"what is evaporation": "Evaporation is the process where liquid water changes into water vapor (gas). This happens when water molecules gain enough energy from heat to break free from the liquid's surface. Evaporation occurs at temperatures below water's boiling point and is a key part of the water cycle. It happens all around us - from wet clothes drying to puddles disappearing after rain. Factors affecting evaporation rate include temperature, humidity, wind speed, and surface area. Unlike boiling, evaporation only occurs at the surface of a liquid rather than throughout the entire volume.",
	"what is science": "Science is the systematic study of the natural world through observation, experimentation, and the formulation and testing of hypotheses. It aims to discover patterns and principles that help us understand how things work. The scientific method involves making observations, asking questions, forming hypotheses, conducting experiments, analyzing data, and drawing conclusions. Science encompasses many fields including physics, chemistry, biology, astronomy, geology, and more. It is characterized by its emphasis on empirical evidence, logical reasoning, skepticism, and peer review to validate findings. Science continuously evolves as new discoveries challenge and refine our understanding of the universe.",
	"what is photosynthesis": "Photosynthesis is the process by which green plants, algae, and certain bacteria convert light energy, usually from the sun, into chemical energy in the form of glucose or other sugars. The process primarily takes place in plant leaves within specialized structures called chloroplasts that contain the green pigment chlorophyll. During photosynthesis, plants take in carbon dioxide (CO₂) from the air through small openings called stomata, and water (H₂O) from the soil through their roots. Using sunlight energy, these components are transformed into glucose (C₆H₁₂O₆) and oxygen (O₂). The overall chemical equation is: 6CO₂ + 6H₂O + light energy → C₆H₁₂O₆ + 6O₂. This process is essential for life on Earth as it produces oxygen for respiration and serves as the foundation of most food chains.",
	"what is dna": "DNA (Deoxyribonucleic Acid) is a molecule that carries the genetic instructions for the development, functioning, growth, and reproduction of all known organisms. DNA consists of two long strands that form a double helix structure, resembling a twisted ladder. Each strand is made up of nucleotides, which contain a sugar (deoxyribose), a phosphate group, and one of four nitrogen-containing bases: adenine (A), thymine (T), guanine (G), or cytosine (C). The bases pair specifically: A with T and G with C, forming the 'rungs' of the ladder. The sequence of these bases encodes the genetic information. When cells divide, DNA replicates itself so that each new cell has an identical copy. Mutations in DNA can lead to variations that drive evolution but can also cause diseases. DNA was first isolated by Friedrich Miescher in 1869, but its structure wasn't determined until 1953 by James Watson and Francis Crick, with crucial X-ray crystallography work by Rosalind Franklin and Maurice Wilkins.",
	"what is gravity": "Gravity is the natural force by which objects with mass attract one another. On Earth, gravity gives weight to objects and causes them to fall toward the ground when dropped. Isaac Newton's law of universal gravitation describes gravity as a force that acts between any two masses, with strength proportional to the product of the masses and inversely proportional to the square of the distance between them. Einstein's general theory of relativity, developed in the early 20th century, revolutionized our understanding of gravity by explaining it as a curvature of spacetime caused by mass and energy. This theory successfully predicted phenomena like gravitational waves and the bending of light around massive objects. Gravity plays a crucial role in forming stars, planets, and galaxies, and keeps Earth and other planets in orbit around the Sun. Despite being the weakest of the four fundamental forces, gravity dominates on cosmic scales due to its infinite range and inability to be neutralized.",

	// History
	"what is the capital of the philippines": "The capital of the Philippines is Manila. Located on Luzon Island, it's one of the oldest cities in the country, established in 1571 when Spanish conquistadors arrived. Today, Manila serves as the country's political, economic, educational, and cultural center with a rich history visible in sites like Intramuros (the historic walled city), Rizal Park, and Manila Cathedral. The broader metropolitan area, Metro Manila, includes 16 cities and municipalities including Quezon City, which briefly served as the capital from 1948 to 1976. Manila has been shaped by Spanish colonial rule, American occupation, Japanese invasion during WWII, and various natural disasters throughout its history.",
	"who discovered america": "The question of who discovered America has multiple answers depending on context. Indigenous peoples first arrived thousands of years ago, likely crossing a land bridge from Asia during the last Ice Age (around 15,000-30,000 years ago). These diverse groups developed complex civilizations throughout North and South America. Viking explorer Leif Erikson reached North America around 1000 CE, establishing a short-lived settlement at L'Anse aux Meadows in Newfoundland, Canada. In 1492, Christopher Columbus's voyage initiated sustained European contact with the Americas, though he believed he had reached Asia. This led to subsequent Spanish colonization and the broader 'Columbian Exchange' of people, plants, animals, and diseases between hemispheres. Each represents a 'discovery' from different perspectives. It's important to note that using the term 'discovery' is problematic as it minimizes the presence and achievements of indigenous populations who had inhabited and developed civilizations in the Americas for millennia before European arrival.",
	"what is the french revolution": "The French Revolution (1789-1799) was a period of radical social and political upheaval in France that fundamentally transformed the country's governmental structure from an absolute monarchy to a republic based on the principles of liberty, equality, and fraternity. Triggered by financial crisis, social inequalities, and Enlightenment ideals, it began with the Storming of the Bastille on July 14, 1789. Key events included the Declaration of the Rights of Man and of the Citizen, the women's march on Versailles, the abolition of feudalism, and the execution of King Louis XVI in 1793. The Revolution entered its most radical phase with the Reign of Terror (1793-1794) under Maximilien Robespierre and the Committee of Public Safety, when thousands were executed by guillotine. The Revolution eventually gave way to the Directory and then Napoleon Bonaparte's rise to power. Its legacy is profound, inspiring revolutionary movements worldwide and establishing ideals of republican government, secularism, nationalism, and citizen rights that continue to influence modern politics and society.",
	"what caused world war 2": "World War II (1939-1945) was caused by multiple interconnected factors: 1) The harsh terms of the Treaty of Versailles following World War I, which humiliated Germany, imposed severe economic penalties, and created resentment and economic hardship; 2) The Great Depression (1929-1939), which intensified economic nationalism, trade protectionism, and created conditions for extremist political movements to gain support; 3) The rise of fascism and militaristic nationalism, particularly Nazi Germany under Adolf Hitler, with aggressive expansionist policies based on racial ideology and the concept of 'living space' (Lebensraum); 4) The failure of appeasement policies by Western powers, who hoped to avoid war by making concessions to Hitler, exemplified by the Munich Agreement of 1938; 5) Japan's militaristic expansion in Asia, driven by imperial ambitions and resource needs; and 6) The collapse of international cooperation through the ineffective League of Nations. The war officially began in Europe when Germany invaded Poland on September 1, 1939, prompting Britain and France to declare war. It expanded into a truly global conflict after Japan's attack on Pearl Harbor in December 1941 and Hitler's declaration of war against the United States days later.",
	"who was julius caesar": "Julius Caesar (100-44 BCE) was a Roman general, statesman, and consul who played a critical role in the events that led to the demise of the Roman Republic and the rise of the Roman Empire. Born into a patrician family, Caesar rose to prominence through military achievements, particularly his conquest of Gaul (modern France and Belgium) between 58-50 BCE, which he documented in his famous 'Commentaries on the Gallic War.' His military success and popularity with the people threatened the Senate's authority. After crossing the Rubicon River with his army in 49 BCE (famously declaring 'the die is cast'), he defeated his rival Pompey in a civil war and became dictator of Rome. As dictator, Caesar implemented numerous reforms: he restructured debt laws, reformed the calendar to the Julian calendar (basis for our modern calendar), expanded the Senate, and granted citizenship to many provincials. His centralization of power alarmed many senators who feared he would declare himself king. This led to his assassination on March 15 (the Ides of March), 44 BCE, when he was stabbed 23 times by a group of senators led by Marcus Junius Brutus and Gaius Cassius Longinus. His death sparked another civil war that ended the Roman Republic. His grandnephew and adopted heir Octavian (later Augustus) became the first Roman Emperor, fulfilling Caesar's legacy of transforming Rome from republic to empire.",
}
