package analysis

// Mode 分析类型，对应路由中的 {analysisType}
type Mode string

const (
	ModeVowels     Mode = "vowels"
	ModeConsonants Mode = "consonants"
)

// ParseMode 严格匹配（区分大小写）analysisType
func ParseMode(s string) (Mode, bool) {
	m := Mode(s)
	return m, m.Valid()
}

func (m Mode) Valid() bool {
	return m == ModeVowels || m == ModeConsonants
}

func (m Mode) String() string {
	return string(m)
}
