package quiz

// fallbackQuestions devolve o conjunto fixo usado quando a geração via Gemini
// falha. Sempre retorna uma cópia nova com exatamente QuestionCount perguntas.
func fallbackQuestions() []Question {
	questions := []Question{
		{
			Text: "Qual é a capital do Brasil?",
			Options: map[string]string{
				"A": "São Paulo",
				"B": "Brasília",
				"C": "Rio de Janeiro",
				"D": "Salvador",
			},
			CorrectLetter: "B",
			Explanation:   "Brasília foi inaugurada em 1960 e substituiu o Rio de Janeiro como capital federal.",
		},
		{
			Text: "Quem escreveu o romance \"Dom Casmurro\"?",
			Options: map[string]string{
				"A": "José de Alencar",
				"B": "Graciliano Ramos",
				"C": "Machado de Assis",
				"D": "Clarice Lispector",
			},
			CorrectLetter: "C",
			Explanation:   "\"Dom Casmurro\" (1899) é uma das obras mais conhecidas de Machado de Assis.",
		},
		{
			Text: "Qual planeta do Sistema Solar é conhecido como Planeta Vermelho?",
			Options: map[string]string{
				"A": "Vênus",
				"B": "Júpiter",
				"C": "Saturno",
				"D": "Marte",
			},
			CorrectLetter: "D",
			Explanation:   "A coloração avermelhada de Marte vem do óxido de ferro presente em sua superfície.",
		},
		{
			Text: "Quanto é 7 × 8?",
			Options: map[string]string{
				"A": "54",
				"B": "56",
				"C": "58",
				"D": "64",
			},
			CorrectLetter: "B",
			Explanation:   "7 × 8 = 56.",
		},
		{
			Text: "Qual é o maior oceano da Terra?",
			Options: map[string]string{
				"A": "Oceano Pacífico",
				"B": "Oceano Atlântico",
				"C": "Oceano Índico",
				"D": "Oceano Ártico",
			},
			CorrectLetter: "A",
			Explanation:   "O Pacífico cobre cerca de um terço da superfície do planeta.",
		},
		{
			Text: "Em que ano foi proclamada a independência do Brasil?",
			Options: map[string]string{
				"A": "1808",
				"B": "1822",
				"C": "1889",
				"D": "1922",
			},
			CorrectLetter: "B",
			Explanation:   "A independência foi proclamada por Dom Pedro I em 7 de setembro de 1822.",
		},
		{
			Text: "Qual gás as plantas absorvem da atmosfera durante a fotossíntese?",
			Options: map[string]string{
				"A": "Oxigênio",
				"B": "Nitrogênio",
				"C": "Gás carbônico",
				"D": "Hidrogênio",
			},
			CorrectLetter: "C",
			Explanation:   "As plantas absorvem CO2 e liberam oxigênio durante a fotossíntese.",
		},
		{
			Text: "Qual é o menor número primo?",
			Options: map[string]string{
				"A": "0",
				"B": "1",
				"C": "2",
				"D": "3",
			},
			CorrectLetter: "C",
			Explanation:   "O número 2 é o menor primo e o único primo par.",
		},
		{
			Text: "Quem pintou o quadro \"Mona Lisa\"?",
			Options: map[string]string{
				"A": "Michelangelo",
				"B": "Leonardo da Vinci",
				"C": "Rafael",
				"D": "Caravaggio",
			},
			CorrectLetter: "B",
			Explanation:   "A \"Mona Lisa\" foi pintada por Leonardo da Vinci no início do século XVI.",
		},
		{
			Text: "Qual é a fórmula química da água?",
			Options: map[string]string{
				"A": "CO2",
				"B": "NaCl",
				"C": "H2O2",
				"D": "H2O",
			},
			CorrectLetter: "D",
			Explanation:   "A molécula de água é formada por dois átomos de hidrogênio e um de oxigênio.",
		},
	}

	out := make([]Question, len(questions))
	copy(out, questions)
	return out
}
