package testutils

// TestTexts are uploads used across annotator and flow tests.
var TestTexts = []string{
	`But Google is starting from behind. The company made a late push into hardware, and
Apple's Siri, available on iPhones, and Amazon's Alexa software, which runs on its Echo and
Dot devices, have clear leads in consumer adoption.`,
	`South Korea's Kospi gained as much as 1%, on track for its sixth daily advance. Samsung
Electronics and SK Hynix were among the biggest contributors to the benchmark.`,
	"Hello world. This is a test.",
}

// TestAnnotationJSON is a small annotation file as written by the record writer.
const TestAnnotationJSON = `[
    {
        "data": {"text": "cat dog"},
        "predictions": []
    },
    {
        "data": {"text": "dog bird"},
        "predictions": []
    }
]`
