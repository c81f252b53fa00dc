package similarity

// radicalNames labels the Kangxi radical numbers that are common enough in
// the study material to deserve a readable name.
var radicalNames = map[string]string{
	"1": "一 (いち)", "2": "丨 (ぼう)", "3": "丶 (てん)", "4": "丿 (の)",
	"5": "乙 (おつ)", "6": "亅 (かぎ)", "7": "二 (に)", "8": "亠 (なべぶた)",
	"9": "人/亻 (ひと)", "10": "儿 (にんにょう)", "11": "入 (いる)",
	"12": "八 (はち)", "13": "冂 (けいがまえ)", "14": "冖 (わかんむり)",
	"15": "冫 (にすい)", "16": "几 (つくえ)", "17": "凵 (かんにょう)",
	"18": "刀/刂 (かたな)", "19": "力 (ちから)", "20": "勹 (つつみがまえ)",
	"30": "口 (くち)", "32": "土 (つち)", "37": "大 (だい)",
	"38": "女 (おんな)", "40": "宀 (うかんむり)", "46": "山 (やま)",
	"57": "弓 (ゆみ)", "60": "彳 (ぎょうにんべん)", "61": "心/忄 (こころ)",
	"64": "手/扌 (て)", "72": "日 (ひ)", "74": "月 (つき/にくづき)",
	"75": "木 (き)", "85": "水/氵 (みず)", "86": "火/灬 (ひ)",
	"94": "犬/犭 (いぬ)", "96": "玉/王 (たま)", "102": "田 (た)",
	"109": "目 (め)", "112": "石 (いし)", "113": "示/礻 (しめす)",
	"115": "禾 (のぎ)", "118": "竹 (たけ)", "120": "糸 (いと)",
	"130": "肉/月 (にく)", "140": "艸/艹 (くさ)", "142": "虫 (むし)",
	"145": "衣/衤 (ころも)", "149": "言/訁 (ことば)", "154": "貝 (かい)",
	"157": "足 (あし)", "162": "辵/辶 (しんにょう)", "167": "金/釒 (かね)",
	"169": "門 (もん)", "170": "阝左 (こざと)", "172": "隹 (ふるとり)",
	"173": "雨 (あめ)", "184": "食/飠 (しょく)", "187": "馬 (うま)",
	"195": "魚 (うお)", "196": "鳥 (とり)",
}

// RadicalLabel returns the display name of a radical code, falling back to
// "Radical <code>".
func RadicalLabel(code string) string {
	if name, ok := radicalNames[code]; ok {
		return name
	}
	return "Radical " + code
}
