// Package config describes the greeting's content, colors, timings and
// music, with defaults for every field.
package config

import "valentine/assets"

// Config is the full configuration bundle. Any field left out of the JSON
// file keeps its value from Default.
type Config struct {
	ValentineName  string         `json:"valentineName" env:"VALENTINE_NAME"`
	PageTitle      string         `json:"pageTitle"     env:"VALENTINE_PAGE_TITLE"`
	FloatingEmojis FloatingEmojis `json:"floatingEmojis"`
	Questions      Questions      `json:"questions"`
	Celebration    Celebration    `json:"celebration"`
	Colors         Colors         `json:"colors"`
	Animations     Animations     `json:"animations"`
	Music          Music          `json:"music"     envPrefix:"VALENTINE_MUSIC_"`
	MusicWin       Music          `json:"music_win" envPrefix:"VALENTINE_CELEBRATION_MUSIC_"`
}

// FloatingEmojis are the background decorations.
type FloatingEmojis struct {
	Hearts []string `json:"hearts"`
	Bears  []string `json:"bears"`
}

// Questions holds the text of each screen.
type Questions struct {
	First  FirstQuestion  `json:"first"`
	Second SecondQuestion `json:"second"`
	Third  ThirdQuestion  `json:"third"`
	Fourth FourthQuestion `json:"fourth"`
}

// FirstQuestion is the opening screen. An empty NoBtn hides the button and
// an empty SecretAnswer disables the hover message.
type FirstQuestion struct {
	Text         string `json:"text"`
	YesBtn       string `json:"yesBtn"`
	NoBtn        string `json:"noBtn"`
	SecretAnswer string `json:"secretAnswer"`
}

// SecondQuestion is the escalation screen. NextBtnLevels are the labels the
// wrong button takes after each wrong answer.
type SecondQuestion struct {
	Text          string    `json:"text"`
	StartText     string    `json:"startText"`
	NextBtn       string    `json:"nextBtn"`
	NextBtnLevels []string  `json:"nextBtnLevels"`
	Reactions     Reactions `json:"reactions"`
}

// Reactions are the three reaction slots. A nil slot shows no reaction.
type Reactions struct {
	Bad1 *Reaction `json:"bad1,omitempty"`
	Bad2 *Reaction `json:"bad2,omitempty"`
	Bad3 *Reaction `json:"bad3,omitempty"`
}

// Reaction is a picture with a caption.
type Reaction struct {
	Text  string `json:"text"`
	Image string `json:"image"`
}

// ThirdQuestion is the screen reached by the correct answer.
type ThirdQuestion struct {
	Text   string `json:"text"`
	YesBtn string `json:"yesBtn"`
	NoBtn  string `json:"noBtn"`
}

// FourthQuestion is the final question, shown after the timed reveal.
type FourthQuestion struct {
	Text       string      `json:"text"`
	YesBtn     string      `json:"yesBtn"`
	NoBtn      string      `json:"noBtn"`
	Candidates *Candidates `json:"candidates,omitempty"`
}

// Candidates are two pictures shown with the final question.
type Candidates struct {
	Img1 string `json:"img1"`
	Img2 string `json:"img2"`
}

// Celebration is the terminal screen.
type Celebration struct {
	Title          string   `json:"title"`
	Message        string   `json:"message"`
	Emojis         string   `json:"emojis"`
	Image          string   `json:"image"`
	FloatingImages []string `json:"floatingImages"`
}

// Colors are hex color strings, "#rgb" or "#rrggbb".
type Colors struct {
	BackgroundStart  string `json:"backgroundStart"`
	BackgroundEnd    string `json:"backgroundEnd"`
	ButtonBackground string `json:"buttonBackground"`
	ButtonHover      string `json:"buttonHover"`
	TextColor        string `json:"textColor"`
}

// Animations tune the decorations. Durations and distances keep their CSS
// spelling ("15s", "50px").
type Animations struct {
	FloatDuration      string  `json:"floatDuration"`
	FloatDistance      string  `json:"floatDistance"`
	BounceSpeed        string  `json:"bounceSpeed"`
	HeartExplosionSize float64 `json:"heartExplosionSize"`
}

// Music configures one audio track.
type Music struct {
	Enabled   bool    `json:"enabled"   env:"ENABLED"`
	Autoplay  bool    `json:"autoplay"  env:"AUTOPLAY"`
	MusicURL  string  `json:"musicUrl"  env:"URL"`
	StartText string  `json:"startText"`
	StopText  string  `json:"stopText"`
	Volume    float64 `json:"volume"    env:"VOLUME"`
}

// DefaultName replaces a missing valentineName.
const DefaultName = "My Love"

// DefaultVolume is used when the volume is unset or out of range.
const DefaultVolume = 0.5

// DefaultExplosionSize replaces an out-of-range heartExplosionSize.
const DefaultExplosionSize = 1.5

// MinFloatDuration is the shortest accepted floatDuration.
const MinFloatDuration = "5s"

// DefaultColors holds the fallback for each color slot.
var DefaultColors = Colors{
	BackgroundStart:  "#ffafbd",
	BackgroundEnd:    "#ffc3a0",
	ButtonBackground: "#ff6b6b",
	ButtonHover:      "#ff8787",
	TextColor:        "#ff4757",
}

// Default returns the stock greeting. No track URLs are set, so background
// music stays off and the celebration is silent until one is configured.
func Default() Config {
	return Config{
		ValentineName: DefaultName,
		PageTitle:     "Will You Be My Valentine? 💝",
		FloatingEmojis: FloatingEmojis{
			Hearts: append([]string(nil), assets.DefaultHearts...),
			Bears:  append([]string(nil), assets.DefaultBears...),
		},
		Questions: Questions{
			First: FirstQuestion{
				Text:   "Are you ready?",
				YesBtn: "Let's get into it!",
			},
			Second: SecondQuestion{
				Text:      "First things first, we have to establish something very important... how much do you love me?",
				StartText: "To the moon and back!",
				NextBtn:   "I don't know...",
				NextBtnLevels: []string{
					"I still don't know...",
					"Still not convinced...",
				},
				Reactions: Reactions{
					Bad1: &Reaction{Text: "Hey that's mean", Image: "./not_funny_1.jpg"},
					Bad2: &Reaction{Text: "Not funny", Image: "./not_funny_2.jpg"},
					Bad3: &Reaction{Text: "Okay... this is your final chance", Image: "./not_funny_3.jpg"},
				},
			},
			Third: ThirdQuestion{
				Text:   "WOAH that much??? Well in that case... I have something to ask you... ready?",
				YesBtn: "Omg yes this is so exciting!!",
			},
			Fourth: FourthQuestion{
				Text:   "Will you be my valentine? 😔🥀",
				YesBtn: "YES, A MILLION TIMES YES!!!",
				NoBtn:  "No",
			},
		},
		Celebration: Celebration{
			Title:   "Yay! I'm the luckiest person in the world! 🎉💝💖💝💓",
			Message: "Now come get your big warm hug and a huge kiss!",
			Emojis:  "🎁💖🤗💝💋❤️💕",
		},
		Colors: DefaultColors,
		Animations: Animations{
			FloatDuration:      "15s",
			FloatDistance:      "50px",
			BounceSpeed:        "0.5s",
			HeartExplosionSize: DefaultExplosionSize,
		},
		Music: Music{
			Enabled:   false,
			Autoplay:  true,
			StartText: "🎵 Play Music",
			StopText:  "🔇 Stop Music",
			Volume:    DefaultVolume,
		},
		MusicWin: Music{
			Enabled:   true,
			Autoplay:  true,
			StartText: "🎵 Play Music",
			StopText:  "🔇 Stop Music",
			Volume:    DefaultVolume,
		},
	}
}
