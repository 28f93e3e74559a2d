package utils_test

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/forestvpn/restcountries/utils"
)

func TestHumanizeDuration(t *testing.T) {
	testCases := map[string]string{
		"250ms":   "250 milliseconds",
		"42s":     "42 seconds",
		"3m5s":    "3 minutes 5 seconds",
		"2h45m":   "2 hours 45 minutes 0 seconds",
		"26h1m3s": "26 hours 1 minutes 3 seconds",
	}

	for input, expected := range testCases {
		d, err := time.ParseDuration(input)

		if err != nil {
			t.Error(err)
		}

		h := utils.HumanizeDuration(d)

		if h != expected {
			t.Errorf("%s != %s; want ==", h, expected)
		}
	}
}

func TestTitleFirstWord(t *testing.T) {
	msg := utils.TitleFirstWord("request failed: GET https://restcountries.com/v2/name/x: status 404")
	expected := "Request failed: GET https://restcountries.com/v2/name/x: status 404"

	if msg != expected {
		t.Errorf("%s != %s; want ==", msg, expected)
	}
}

func TestConfigureLogger(t *testing.T) {
	utils.Verbose = true
	utils.ConfigureLogger()

	if utils.Logger.GetLevel() != logrus.DebugLevel {
		t.Errorf("%s != %s; want ==", utils.Logger.GetLevel(), logrus.DebugLevel)
	}

	utils.Verbose = false
	utils.ConfigureLogger()

	if utils.Logger.GetLevel() != logrus.ErrorLevel {
		t.Errorf("%s != %s; want ==", utils.Logger.GetLevel(), logrus.ErrorLevel)
	}
}
