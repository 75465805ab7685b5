package main

import (
	"fmt"
	"net/http"
	"os"
	"polls_webapp/dao"
	"polls_webapp/function"
	"polls_webapp/logger"
	"polls_webapp/models"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/sns"
	"github.com/gin-gonic/gin"
	newuuid "github.com/google/uuid"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/mysql"
	"github.com/joho/godotenv"
	"gopkg.in/alexcesaro/statsd.v2"
)

var err error

func main() {

	LoadEnv()

	logger.Log.Printf("polls web app is starting...")

	// try to connect to the mysql database
	dao.DB, err = gorm.Open("mysql", dao.DbURL(dao.BuildDBConfig()))
	if err != nil {
		fmt.Println("Status:", err)
		logger.Log.Fatal(err.Error())
	}
	defer dao.DB.Close()

	// auto migrate the structures into the DB tables
	dao.DB.AutoMigrate(&models.User{})
	dao.DB.AutoMigrate(&models.Question{}).AddForeignKey("user_id", "users(id)", "RESTRICT", "RESTRICT")

	r := setupRouter()
	r.Run(":9090")
}

func setupRouter() *gin.Engine {

	// create a default router
	r := gin.Default()
	r.LoadHTMLGlob("templates/*")

	d, err := statsd.New() // Connect to the UDP port 8125 by default.
	if err != nil {
		// If nothing is listening on the target port, an error is returned and
		// the returned client does nothing but is still usable. So we can
		// just log the error and go on.
		logger.Log.Printf(err.Error())
	}

	r.GET("/hello", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "polls web app is running",
		})
	})

	pollsGroup := r.Group("/polls")
	{
		// index page: the latest 5 published questions
		pollsGroup.GET("", func(c *gin.Context) {
			logger.Log.Printf("Index page is starting...")
			d.Increment("polls.index")
			t := d.NewTiming()

			var latest []models.Question
			t2 := d.NewTiming()
			if err := dao.DB.Where("pub_date <= ?", time.Now()).Order("pub_date desc").Limit(5).Find(&latest).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				logger.Log.Printf(err.Error())
				return
			}
			t2.Send("db_response_time")

			c.HTML(http.StatusOK, "index.html", gin.H{
				"latest_question_list": latest,
			})

			t.Send("api_response_time")
			logger.Log.Printf("Index page is done...")
		})

		// detail page: a published question, 404 when missing or not yet published
		pollsGroup.GET("/:question_id", func(c *gin.Context) {
			logger.Log.Printf("Detail page is starting...")
			d.Increment("polls.detail")
			t := d.NewTiming()

			questionId := c.Params.ByName("question_id")

			var question models.Question
			t2 := d.NewTiming()
			if err := dao.DB.Where("id=? AND pub_date <= ?", questionId, time.Now()).First(&question).Error; err != nil {
				c.HTML(http.StatusNotFound, "404.html", gin.H{})
				logger.Log.Printf(err.Error())
				return
			}
			t2.Send("db_response_time")

			c.HTML(http.StatusOK, "detail.html", gin.H{
				"question":               question,
				"was_published_recently": question.WasPublishedRecently(),
			})

			t.Send("api_response_time")
			logger.Log.Printf("Detail page is done...")
		})
	}

	v1Group := r.Group("/v1")
	{
		// add user
		v1Group.POST("/user", func(c *gin.Context) {
			logger.Log.Printf("POST a user is starting...")
			d.Increment("user.create")
			t := d.NewTiming()

			// get the user info from the request
			var user models.User
			c.BindJSON(&user)
			// auto set the id, create time and update time
			user.ID = newuuid.New().String()
			user.AccountCreated = time.Now()
			user.AccountUpdated = time.Now()

			// check the complexity of the password
			// 2 means the password must have at least 2 different char
			code := function.CheckPassword(user.Password, 2)
			switch code {
			case -1:
				c.JSON(http.StatusBadRequest, gin.H{"error": "the password is too short, please use at least 8 char"})
				logger.Log.Printf("error: the password is too short")
				return
			case 0:
				c.JSON(http.StatusBadRequest, gin.H{"error": "the password is too weak, please use letters, digits and special char"})
				logger.Log.Printf("error: the password is too weak")
				return
			}

			// if passed the password test, then we can use this password
			var pass = function.HashAndSalt(function.GetPwd(user.Password))
			user.Password = pass

			// check the email is valid or not
			if user.EmailAddress == nil || !function.CheckEmail(user.EmailAddress) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "the email address is not valid"})
				logger.Log.Printf("error: the email address is not valid")
				return
			}

			t2 := d.NewTiming()

			// check for the email address existing, if exist return 400
			var newUser models.User
			if err := dao.DB.Where("email_address=?", user.EmailAddress).First(&newUser).Error; err == nil {
				c.JSON(400, gin.H{"error": "the email address is already exist"})
				logger.Log.Printf("error: the email address is already exist")
				return
			}

			// send into the DB, and then response
			if err := dao.DB.Create(&user).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				logger.Log.Printf(err.Error())
			} else {
				c.JSON(http.StatusOK, gin.H{
					"id":          user.ID,
					"create time": user.AccountCreated,
					"update time": user.AccountUpdated,
					"email":       user.EmailAddress,
					"first name":  user.FirstName,
					"last name":   user.LastName,
				})
			}

			t2.Send("db_response_time")
			t.Send("api_response_time")
			logger.Log.Printf("POST a user is done...")
		})

		// get all published questions
		v1Group.GET("/question", func(c *gin.Context) {
			logger.Log.Printf("Get all questions is starting...")
			d.Increment("question.list")
			t := d.NewTiming()

			var questionArr []models.Question
			t2 := d.NewTiming()
			if err := dao.DB.Where("pub_date <= ?", time.Now()).Order("pub_date desc").Find(&questionArr).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				logger.Log.Printf(err.Error())
				return
			}
			t2.Send("db_response_time")

			c.JSON(http.StatusOK, gin.H{
				"questions": questionArr,
			})

			t.Send("api_response_time")
			logger.Log.Printf("Get all questions is done...")
		})

		// get a published question
		v1Group.GET("/question/:question_id", func(c *gin.Context) {
			logger.Log.Printf("Get a question is starting...")
			d.Increment("question.get")
			t := d.NewTiming()

			questionId, valid := c.Params.Get("question_id")
			if !valid {
				c.JSON(http.StatusBadRequest, gin.H{"error": "cannot get the question_id"})
				logger.Log.Printf("error: cannot get the question_id")
				return
			}

			// the same visibility rule as the detail page, a question with a
			// pub_date in the future is a 404
			var question models.Question
			t2 := d.NewTiming()
			if err := dao.DB.Where("id=? AND pub_date <= ?", questionId, time.Now()).First(&question).Error; err != nil {
				c.JSON(404, gin.H{"error": "The question_id is not exist"})
				logger.Log.Printf(err.Error())
				return
			}
			t2.Send("db_response_time")

			c.JSON(http.StatusOK, gin.H{
				"question":               question,
				"was_published_recently": question.WasPublishedRecently(),
			})

			t.Send("api_response_time")
			logger.Log.Printf("Get a question is done...")
		})
	}

	// Group using the basic auth middleware over the users table
	authorized := r.Group("/v1", function.BasicAuth())

	// post a new question
	authorized.POST("/question/", func(c *gin.Context) {
		logger.Log.Printf("Post a question is starting...")
		d.Increment("question.create")
		t := d.NewTiming()

		email := function.FetchUsername
		var user models.User
		if err := dao.DB.Where("email_address=?", email).First(&user).Error; err != nil {
			c.JSON(404, gin.H{"error": err.Error()})
			logger.Log.Printf(err.Error())
			return
		} // get the user info based on email

		var question models.Question
		c.BindJSON(&question)
		if question.QuestionText == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no content"})
			logger.Log.Printf("error: no content")
			return
		}
		// auto set the id, create time and update time
		question.ID = newuuid.New().String()
		question.QuestionCreated = time.Now()
		question.QuestionUpdated = time.Now()
		question.UserID = user.ID
		// publish now unless a pub_date was given
		if question.PubDate.IsZero() {
			question.PubDate = time.Now()
		}

		t2 := d.NewTiming()

		// send into the DB, and then response
		if err := dao.DB.Create(&question).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			logger.Log.Printf(err.Error())
		} else {
			c.JSON(http.StatusOK, gin.H{
				"question_id":       question.ID,
				"created_timestamp": question.QuestionCreated,
				"updated_timestamp": question.QuestionUpdated,
				"user_id":           question.UserID,
				"question_text":     question.QuestionText,
				"pub_date":          question.PubDate,
			})
		}

		t2.Send("db_response_time")
		t.Send("api_response_time")
		logger.Log.Printf("Post a question is done...")

		msg := "Create a question," + question.ID + "," + email + "," + question.QuestionText
		snsPublish(msg)
	})

	// update a question
	authorized.PUT("/question/:question_id", func(c *gin.Context) {
		logger.Log.Printf("Update a question is starting...")
		d.Increment("question.update")
		t := d.NewTiming()

		email := function.FetchUsername
		var user models.User
		if err := dao.DB.Where("email_address=?", email).First(&user).Error; err != nil {
			c.JSON(404, gin.H{"error": "cannot find the user"})
			logger.Log.Printf(err.Error())
			return
		} // get the user info based on email

		// get the question_id
		questionId, valid := c.Params.Get("question_id")
		if !valid {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cannot get the question_id"})
			logger.Log.Printf("error: cannot get the question_id")
			return
		}

		// check the question_id exist or not
		var question models.Question
		if err := dao.DB.Where("id=?", questionId).First(&question).Error; err != nil {
			c.JSON(404, gin.H{"error": "The question_id is not exist"})
			logger.Log.Printf(err.Error())
			return
		}

		// check authenticated or not
		if question.UserID != user.ID {
			c.JSON(401, gin.H{"error": "the question does not belong to this user"})
			logger.Log.Printf("error: the question does not belong to this user")
			return
		}

		// update question
		var newQuestion models.Question
		c.BindJSON(&newQuestion)
		// check content is empty or not
		if newQuestion.QuestionText == "" && newQuestion.PubDate.IsZero() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no content"})
			logger.Log.Printf("error: no content")
			return
		}
		if newQuestion.QuestionText != "" {
			question.QuestionText = newQuestion.QuestionText
		}
		if !newQuestion.PubDate.IsZero() {
			question.PubDate = newQuestion.PubDate
		}
		question.QuestionUpdated = time.Now()

		t2 := d.NewTiming()

		// send into the DB, and then response
		if err := dao.DB.Save(&question).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			logger.Log.Printf(err.Error())
		} else {
			c.JSON(http.StatusOK, gin.H{"msg": "Updated a question"})
		}

		t2.Send("db_response_time")
		t.Send("api_response_time")
		logger.Log.Printf("Update a question is done...")
	})

	// delete a question
	authorized.DELETE("/question/:question_id", func(c *gin.Context) {
		logger.Log.Printf("Delete a question is starting...")
		d.Increment("question.delete")
		t := d.NewTiming()

		email := function.FetchUsername
		var user models.User
		if err := dao.DB.Where("email_address=?", email).First(&user).Error; err != nil {
			c.JSON(404, gin.H{"error": "cannot find the user"})
			logger.Log.Printf(err.Error())
			return
		} // get the user info based on email

		// get the question_id
		questionId, valid := c.Params.Get("question_id")
		if !valid {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cannot get the question_id"})
			logger.Log.Printf("error: cannot get the question_id")
			return
		}

		// check the question_id exist or not
		var question models.Question
		if err := dao.DB.Where("id=?", questionId).First(&question).Error; err != nil {
			c.JSON(404, gin.H{"error": "The question_id is not exist"})
			logger.Log.Printf(err.Error())
			return
		}

		// check authenticated or not
		if question.UserID != user.ID {
			c.JSON(401, gin.H{"error": "the question does not belong to this user"})
			logger.Log.Printf("error: the question does not belong to this user")
			return
		}

		t2 := d.NewTiming()

		if err := dao.DB.Where("id=?", question.ID).Delete(models.Question{}).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			logger.Log.Printf(err.Error())
		} else {
			c.JSON(http.StatusOK, gin.H{"msg": "Deleted a question"})
		}

		t2.Send("db_response_time")
		t.Send("api_response_time")
		logger.Log.Printf("Delete a question is done...")

		msg := "Delete a question," + question.ID + "," + email + "," + question.QuestionText
		snsPublish(msg)
	})

	return r
}

//GetEnvWithKey : get env value
func GetEnvWithKey(key string) string {
	return os.Getenv(key)
}

func LoadEnv() {
	err := godotenv.Load(".env")
	if err != nil {
		logger.Log.Printf("no .env file, using the environment as is")
	}
}

// snsPublish sends a notification to the configured topic. When no topic
// ARN is configured it does nothing.
func snsPublish(msg string) {
	topicARN := GetEnvWithKey("SNS_TOPIC_ARN")
	if topicARN == "" {
		return
	}

	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(GetEnvWithKey("AWS_REGION")),
	})
	if err != nil {
		fmt.Println("NewSession error:", err)
		logger.Log.Printf(err.Error())
		return
	}

	client := sns.New(sess)
	input := &sns.PublishInput{
		Message:  aws.String(msg),
		TopicArn: aws.String(topicARN),
	}

	_, err = client.Publish(input)
	if err != nil {
		fmt.Println("Publish error:", err)
		logger.Log.Printf(err.Error())
		return
	}
}
