package catalog

import "fridge-api/internal/pkg/common"

// builtinRecipes 內建食譜（編譯進執行檔，永遠可用）
// 舊資料的分類標籤在這裡就已經正規化過了
var builtinRecipes = []common.Recipe{
	{
		ID:            "molokhia",
		Name:          "ملوخية بالفراخ",
		Image:         "🍲",
		PrepTime:      15,
		CookTime:      45,
		Difficulty:    common.DifficultyMedium,
		Category:      common.CategorySoup,
		Servings:      4,
		EstimatedCost: 80,
		Description:   "أكلة مصرية تقليدية وشعبية، طعمها مميز ومفيدة جداً",
		Ingredients: []string{
			"فراخ مقطعة",
			"ملوخية مفرومة",
			"شوربة فراخ",
			"ثوم",
			"كسبرة ناشفة",
			"ملح",
			"فلفل أسود",
			"سمن أو زيت",
		},
		Instructions: []string{
			"اسلقي الفراخ في ماء مغلي مع البصل والحبهان والملح",
			"أخرجي الفراخ واتركي الشوربة على النار",
			"في مقلاة، حمري الثوم المفروم في السمن",
			"أضيفي الكسبرة الناشفة المطحونة",
			"أضيفي الملوخية واستمري في التحريك",
			"أضيفي الشوربة تدريجياً واتركيها تغلي",
			"تبلي بالملح والفلفل الأسود",
			"اتركيها تنضج لمدة 10 دقائق",
		},
		Alternatives: map[string]string{
			"كسبرة ناشفة": "بقدونس مجفف",
			"سمن":         "زيت ذرة أو عباد الشمس",
		},
	},
	{
		ID:            "koshari",
		Name:          "كشري",
		Image:         "🍚",
		PrepTime:      20,
		CookTime:      40,
		Difficulty:    common.DifficultyMedium,
		Category:      common.CategoryOther,
		Servings:      6,
		EstimatedCost: 45,
		Description:   "الأكلة الشعبية الأولى في مصر، مليانة طاقة ومشبعة",
		Ingredients: []string{
			"أرز أبيض",
			"عدس أسود",
			"شعرية",
			"حمص حب",
			"بصل",
			"طماطم",
			"ثوم",
			"خل",
			"صلصة طماطم",
			"زيت",
			"شطة",
			"كمون",
		},
		Instructions: []string{
			"اسلقي العدس والحمص منفصلين حتى ينضجوا",
			"اطبخي الأرز مع الشعرية المحمرة",
			"قطعي البصل شرائح واقليه حتى يذبل ويحمر",
			"اعملي الصلصة: حمري الثوم في الزيت، أضيفي الطماطم والصلصة",
			"تبلي الصلصة بالملح والفلفل والكمون",
			"اعملي الدقة: ثوم وخل وشطة وملح",
			"في الطبق، ضعي طبقة من الأرز ثم العدس والحمص",
			"أضيفي الصلصة والبصل المحمر والدقة",
		},
		Alternatives: map[string]string{
			"عدس أسود": "عدس أحمر",
			"خل":       "عصير ليمون",
		},
	},
	{
		ID:            "mahshi",
		Name:          "محشي كرنب",
		Image:         "🥬",
		PrepTime:      30,
		CookTime:      60,
		Difficulty:    common.DifficultyHard,
		Category:      common.CategoryStuffed,
		Servings:      6,
		EstimatedCost: 70,
		Description:   "محشي لذيذ ومشبع، يحتاج صبر في التحضير بس النتيجة تستاهل",
		Ingredients: []string{
			"كرنب كبير",
			"أرز",
			"لحمة مفرومة",
			"بصل",
			"طماطم",
			"بقدونس",
			"شبت",
			"ملح",
			"فلفل أسود",
			"بهارات مشكلة",
			"زيت",
		},
		Instructions: []string{
			"اسلقي الكرنب في ماء مغلي حتى تلين الأوراق",
			"اتركي الكرنب يبرد وافصلي الأوراق بحرص",
			"اخلطي الأرز مع اللحمة المفرومة والبصل المبشور",
			"أضيفي الطماطم المبشورة والخضرة المفرومة",
			"تبلي الخلطة بالملح والفلفل والبهارات",
			"ضعي ملعقة من الحشو في كل ورقة كرنب واطويها",
			"رصي المحشي في الحلة مع شرائح الطماطم",
			"أضيفي الماء واتركيه ينضج على نار هادئة لمدة ساعة",
		},
		Alternatives: map[string]string{
			"لحمة مفرومة": "فراخ مفرومة",
			"شبت":         "بقدونس إضافي",
		},
	},
	{
		ID:            "roz-bel-laban",
		Name:          "أرز باللبن",
		Image:         "🍚",
		PrepTime:      10,
		CookTime:      30,
		Difficulty:    common.DifficultyEasy,
		Category:      common.CategoryOther,
		Servings:      4,
		EstimatedCost: 25,
		Description:   "حلو مصري تقليدي، خفيف ولذيذ ومحبوب من الكل",
		Ingredients: []string{
			"أرز مسلوق",
			"لبن",
			"سكر",
			"نشا",
			"فانيليا",
			"قرفة",
			"جوز هند مبشور",
			"زبيب",
		},
		Instructions: []string{
			"اسلقي الأرز جيداً حتى يصبح طرياً",
			"في إناء آخر، ضعي اللبن على النار",
			"أضيفي السكر وحركي حتى يذوب",
			"اخلطي النشا في قليل من اللبن البارد",
			"أضيفي النشا المذاب للبن المغلي مع التحريك",
			"أضيفي الأرز المسلوق واتركي الخليط ينضج",
			"أضيفي الفانيليا في النهاية",
			"اسكبيه في أكواب وزينيه بالقرفة والجوز هند",
		},
		Alternatives: map[string]string{
			"نشا":     "دقيق مذاب في لبن",
			"جوز هند": "لوز مقطع",
		},
	},
	{
		ID:            "batates-bel-salsa",
		Name:          "بطاطس بالصلصة",
		Image:         "🥔",
		PrepTime:      15,
		CookTime:      25,
		Difficulty:    common.DifficultyEasy,
		Category:      common.CategoryStew,
		Servings:      4,
		EstimatedCost: 30,
		Description:   "أكلة سريعة وسهلة، مناسبة للغداء أو العشاء",
		Ingredients: []string{
			"بطاطس",
			"طماطم",
			"بصل",
			"ثوم",
			"صلصة طماطم",
			"فلفل أخضر",
			"زيت",
			"ملح",
			"فلفل أسود",
			"بهارات",
		},
		Instructions: []string{
			"قشري البطاطس وقطعيها مكعبات",
			"اقلي البطاطس في الزيت حتى تحمر قليلاً",
			"في مقلاة أخرى، حمري البصل والثوم",
			"أضيفي الطماطم المقطعة والفلفل الأخضر",
			"أضيفي الصلصة والتوابل",
			"أضيفي البطاطس المقلية للصلصة",
			"أضيفي قليل من الماء واتركيها تنضج",
			"تقدم مع الأرز الأبيض",
		},
		Alternatives: map[string]string{
			"فلفل أخضر":   "جزر مقطع",
			"صلصة طماطم": "طماطم مبشورة إضافية",
		},
	},
	{
		ID:            "bamya",
		Name:          "بامية باللحمة",
		Image:         "🟢",
		PrepTime:      20,
		CookTime:      45,
		Difficulty:    common.DifficultyMedium,
		Category:      common.CategoryStew,
		Servings:      5,
		EstimatedCost: 90,
		Description:   "طبق شعبي مصري، البامية طعمها مميز مع اللحمة",
		Ingredients: []string{
			"بامية",
			"لحمة مقطعة مكعبات",
			"طماطم",
			"بصل",
			"ثوم",
			"صلصة طماطم",
			"زيت",
			"خل",
			"ملح",
			"فلفل أسود",
			"كزبرة خضراء",
		},
		Instructions: []string{
			"نظفي البامية واغسليها بالخل",
			"في مقلاة، حمري قطع اللحمة في الزيت",
			"أخرجي اللحمة واتركيها جانباً",
			"في نفس المقلاة، حمري البصل والثوم",
			"أضيفي الطماطم والصلصة",
			"أعيدي اللحمة للمقلاة وأضيفي الماء",
			"اتركي اللحمة تنضج ثم أضيفي البامية",
			"تبلي بالملح والفلفل واتركيها تنضج",
		},
		Alternatives: map[string]string{
			"كزبرة خضراء": "بقدونس",
			"خل":          "عصير ليمون",
		},
	},
}

// BuiltinRecipes 回傳內建食譜的複本（避免呼叫端改到原始資料）
func BuiltinRecipes() []common.Recipe {
	out := make([]common.Recipe, len(builtinRecipes))
	copy(out, builtinRecipes)
	return out
}
